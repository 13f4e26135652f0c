package entity

import "strconv"

// Display strings shown in the reporter block in place of a label
const (
	SentinelNoModel    = "SIN MODELO"
	SentinelNoAnswer   = "SIN RESPUESTA"
	SentinelFetchError = "ERROR FETCH"

	sentinelStatusPrefix = "ERROR "
)

// OutcomeKind tags how a classification request ended
type OutcomeKind string

const (
	OutcomeEmpty      OutcomeKind = "empty"
	OutcomeNoModel    OutcomeKind = "no_model"
	OutcomeLabel      OutcomeKind = "label"
	OutcomeHTTPStatus OutcomeKind = "http_status"
	OutcomeNoAnswer   OutcomeKind = "no_answer"
	OutcomeTransport  OutcomeKind = "transport"
)

// Outcome is the tagged result of a single classification request.
// String flattens it to the text a block reporter displays.
type Outcome struct {
	Kind        OutcomeKind `json:"kind"`
	ModelID     string      `json:"model_id,omitempty"`
	Label       string      `json:"label,omitempty"`
	StatusCode  int         `json:"status_code,omitempty"`
	ServerError string      `json:"server_error,omitempty"`
	Err         error       `json:"-"`
}

// EmptyOutcome is returned for text that trims to nothing
func EmptyOutcome() Outcome {
	return Outcome{Kind: OutcomeEmpty}
}

// NoModelOutcome is returned when no model has been selected
func NoModelOutcome() Outcome {
	return Outcome{Kind: OutcomeNoModel}
}

// LabelOutcome wraps a category returned by the server
func LabelOutcome(modelID, label string) Outcome {
	return Outcome{Kind: OutcomeLabel, ModelID: modelID, Label: label}
}

// StatusOutcome records a non-2xx response
func StatusOutcome(modelID string, statusCode int) Outcome {
	return Outcome{Kind: OutcomeHTTPStatus, ModelID: modelID, StatusCode: statusCode}
}

// NoAnswerOutcome records a 2xx response without a usable category.
// serverError carries the body's "error" field when the server sent one.
func NoAnswerOutcome(modelID, serverError string) Outcome {
	return Outcome{Kind: OutcomeNoAnswer, ModelID: modelID, ServerError: serverError}
}

// TransportOutcome records a failed call or an unreadable response body
func TransportOutcome(modelID string, err error) Outcome {
	return Outcome{Kind: OutcomeTransport, ModelID: modelID, Err: err}
}

// IsSuccess reports whether the server produced a label
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeLabel
}

// String returns the display value for the outcome
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeLabel:
		return o.Label
	case OutcomeNoModel:
		return SentinelNoModel
	case OutcomeHTTPStatus:
		return sentinelStatusPrefix + strconv.Itoa(o.StatusCode)
	case OutcomeNoAnswer:
		return SentinelNoAnswer
	case OutcomeTransport:
		return SentinelFetchError
	default:
		return ""
	}
}
