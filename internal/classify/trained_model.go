package classify

// TrainedModel is an offline-trained categorizer consulted as a last resort
// when neither merchant history nor keywords produce a match. Its training
// pipeline lives outside this repository; implementations may return
// (nil, nil) when no model is loaded.
type TrainedModel interface {
	Predict(merchant string, amount float64) (*Prediction, error)
}
