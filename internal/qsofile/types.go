package qsofile

// Dataset is the input table: an objects-by-observed-bins flux matrix over
// a single shared observed-frame wavelength grid, with one redshift per
// object.
type Dataset struct {
	Flux       [][]float64 `json:"flux"`
	Wavelength []float64   `json:"wavelength"`
	Z          []float64   `json:"z"`
}

// NoisyDataset is the output table: common-grid-bins-by-surviving-objects
// flux and inverse variance matrices, the common rest-frame grid, and the
// redshifts of the surviving objects.
type NoisyDataset struct {
	Flux       [][]float64 `json:"flux"`
	Ivar       [][]float64 `json:"ivar"`
	Wavelength []float64   `json:"wavelength"`
	Z          []float64   `json:"z"`
}
