package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	// requests
	MsgRead    = "read"
	MsgCorrect = "correct"
	MsgProps   = "props"

	// replies
	MsgReadOk     = "readOk"
	MsgReadFailed = "readFailed"
	MsgCorrected  = "corrected"
	MsgError      = "error"
)

// Properties is a snapshot of everything a viscosity model exposes.
// Each field value is the uniform scalar carried by the corresponding field.
type Properties struct {
	Model         string  `json:"model"`
	Temperature   float64 `json:"temperature"`    // K
	Tlambda       float64 `json:"tlambda"`        // K
	Interpolation string  `json:"interpolation"`  // nearest | linear
	Stale         bool    `json:"stale"`          // coefficients read since the last correct
	Rho           float64 `json:"rho"`            // kg/m3
	Nu            float64 `json:"nu"`             // m2/s
	Beta          float64 `json:"beta"`           // 1/K
	AGM           float64 `json:"agm"`            // m s/kg
	S             float64 `json:"s"`              // J/(kg K)
	Eta           float64 `json:"eta"`            // Pa s
	Cp            float64 `json:"cp"`             // J/(kg K)
	Onebyf        float64 `json:"onebyf"`         // W3/(m5 K)
	Clamped       string  `json:"clamped"`        // none | below | above
}

// Coefficients is the body of a read request: coefficient name -> value
type Coefficients map[string]float64
