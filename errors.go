package wavebuilder

import "errors"

var (
	// ErrPatternSize indicates N < 1, or a non-periodic sample smaller than N in either dimension.
	ErrPatternSize = errors.New("wavebuilder: pattern size does not fit the sample")
	// ErrOutputSize indicates a non-positive output width or height, or a
	// non-periodic output smaller than N in either dimension.
	ErrOutputSize = errors.New("wavebuilder: output must be positive, and at least N wide and high when not periodic")
	// ErrSymmetry indicates a symmetry count outside [1,8].
	ErrSymmetry = errors.New("wavebuilder: symmetry must be in [1,8]")
	// ErrEmptySample indicates a sample image with no pixels.
	ErrEmptySample = errors.New("wavebuilder: sample image is empty")
	// ErrNoPatterns indicates that extraction produced an empty catalog.
	ErrNoPatterns = errors.New("wavebuilder: no patterns extracted from sample")
	// ErrTooManyColors indicates more than 256 distinct sample colors.
	ErrTooManyColors = errors.New("wavebuilder: sample has more than 256 colors, set MaxColors to reduce it")
	// ErrNotCollapsed indicates an image was requested before a successful run.
	ErrNotCollapsed = errors.New("wavebuilder: wave has not collapsed")
	// ErrEmptySequence indicates a replay source without values.
	ErrEmptySequence = errors.New("wavebuilder: recorded random sequence is empty")
	// ErrSequenceRange indicates a recorded value outside [0,1).
	ErrSequenceRange = errors.New("wavebuilder: recorded random value outside [0,1)")
	// ErrUnsupportedInput indicates an input file type that cannot be read.
	ErrUnsupportedInput = errors.New("wavebuilder: input must be an image (overlapping) or xml (tiled)")
	// ErrTiledModel indicates a tiled model description, which is not implemented.
	ErrTiledModel = errors.New("wavebuilder: tiled model is not implemented")
)
