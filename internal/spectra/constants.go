package spectra

// Observed-frame coverage of the eBOSS spectrograph in Angstroms.
const (
	EbossWaveMin = 3600.0
	EbossWaveMax = 10000.0
)

// DLogLam is the pixel size in log10 wavelength shared by the observed
// grid, the scale grid and the common output grid.
const DLogLam = 1e-4

// Redshift range of the input catalog. The scale grid spans the union of
// rest-frame coverage over this range.
const (
	ZMin = 0.0
	ZMax = 4.0
)

// FinalBins is the centered truncation of the scale grid used as the
// common output grid, chosen as an even pixel count.
const FinalBins = 11400

// VarianceFloor suppresses inverse-variance blowups when the accumulated
// variance after rebinning is dominated by floating point error.
const VarianceFloor = 1e-2

// Per-object SNR targets are drawn uniformly from this range so the mean
// SNR across the dataset is vaguely 1.
const (
	SNRMin = 0.5
	SNRMax = 1.5
)

// The reference quasar used as the renormalization target is generated at
// a fixed redshift and with its own fixed seed, independent of the run
// seed, so the target is identical across datasets.
const (
	RefQuasarZ    = 2.1
	RefQuasarSeed = 100921
)

// DefaultSeed is the run seed used when none is supplied.
const DefaultSeed = 1234
