// pkg/ai/client.go

package ai

import "context"

const (
	SourceGemini = "gemini"
	SourceOpenAI = "openai"
	SourceMock   = "mock"
)

// Image is the uploaded leaf photo as raw bytes.
type Image struct {
	Data     []byte
	MIMEType string
}

// Diagnosis is what the detector hands back to the scan pipeline. Model
// variants fill DiseaseName and Report only; the mock fills the structured
// fields from its table.
type Diagnosis struct {
	DiseaseName   string `json:"disease_name"`
	DiseaseNameGu string `json:"disease_name_guj"`
	Symptoms      string `json:"symptoms,omitempty"`
	SymptomsGu    string `json:"symptoms_guj,omitempty"`
	Treatment     string `json:"treatment,omitempty"`
	TreatmentGu   string `json:"treatment_guj,omitempty"`
	Fertilizer    string `json:"fertilizer,omitempty"`
	Report        string `json:"report"`
	Source        string `json:"source"`
}

type Detector interface {
	// Diagnose must honour ctx cancellation; the caller owns the deadline.
	Diagnose(ctx context.Context, img Image, cropType string) (*Diagnosis, error)
	Name() string
}
