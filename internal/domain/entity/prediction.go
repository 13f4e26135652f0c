package entity

import "strings"

// Prediction is what the classification server answered for one text.
// Category is empty when the server sent no usable label.
type Prediction struct {
	Category    string `json:"categoria,omitempty"`
	ServerError string `json:"error,omitempty"`
}

// HasCategory returns true if the server returned a label
func (p *Prediction) HasCategory() bool {
	return p != nil && p.Category != ""
}

// TrainingExample is one labelled text sent to the training endpoint
type TrainingExample struct {
	Text     string `json:"texto" yaml:"texto"`
	Category string `json:"categoria" yaml:"categoria"`
}

// TrainedModel describes a model created by the training endpoint
type TrainedModel struct {
	Status   string `json:"status"`
	ModelID  string `json:"model_id"`
	Endpoint string `json:"endpoint"`
}

// NormalizeModelID trims surrounding whitespace from a model id.
// Nothing else is validated; an empty result clears the selection.
func NormalizeModelID(id string) string {
	return strings.TrimSpace(id)
}
