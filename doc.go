// Package wavebuilder generates images that are locally similar to a sample
// image, using the overlapping model of wave function collapse.
//
// Every N×N window of the sample (optionally with its rotations and
// reflections) becomes a pattern. The output starts with every pattern
// possible in every cell; the solver repeatedly collapses the cell of lowest
// entropy to one pattern and propagates the consequences to neighbors until
// each cell holds a single pattern or some cell holds none.
//
//	model, err := wavebuilder.NewOverlappingModel(sample, wavebuilder.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	if model.Run(seed, 0) != wavebuilder.Succeeded {
//		// contradiction: try another seed
//	}
//	img, err := model.Image()
package wavebuilder
