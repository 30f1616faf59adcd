package timeline

// Bounds of the decorative background blobs
const (
	MinBlobSize = 100.0 // px
	MaxBlobSize = 400.0 // px, exclusive
	MaxDrift    = 50.0  // px, drift is drawn from [-MaxDrift, MaxDrift)
	MinDuration = 20.0  // seconds
	MaxDuration = 50.0  // seconds, exclusive

	BlobOpacity = 0.1
	BlobBlur    = 60.0 // px
)

// Blob is one animated background shape. It drifts from its origin to
// (DriftX, DriftY) and back, forever, taking Duration seconds each way.
type Blob struct {
	Index    int     `json:"index"`
	Color    string  `json:"color"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	DriftX   float64 `json:"drift_x"`
	DriftY   float64 `json:"drift_y"`
	Duration float64 `json:"duration"`
	Opacity  float64 `json:"opacity"`
	Blur     float64 `json:"blur"`
}

// BlobFor derives the blob parameters for the project at index.
// The result depends only on its arguments.
func BlobFor(seed uint64, index int, color string) Blob {
	rng := NewRNG(mix(seed, index))
	return Blob{
		Index:    index,
		Color:    color,
		Width:    rng.Range(MinBlobSize, MaxBlobSize),
		Height:   rng.Range(MinBlobSize, MaxBlobSize),
		Left:     rng.Range(0, 100),
		Top:      rng.Range(0, 100),
		DriftX:   rng.Range(-MaxDrift, MaxDrift),
		DriftY:   rng.Range(-MaxDrift, MaxDrift),
		Duration: rng.Range(MinDuration, MaxDuration),
		Opacity:  BlobOpacity,
		Blur:     BlobBlur,
	}
}
