package response

// Envelope statuses: 4xx responses are "fail", 5xx are "error".
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// DefaultErrorMessage is returned for non-operational errors outside development.
const DefaultErrorMessage = "an error occured on our side"

// Resp is the standard JSON response body.
//
//	{"status": "success", "results": 3, "data": {"tours": [...]}}
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Results *int   `json:"results,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data"`
}
