// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"strings"
)

type mockDetector struct{}

func NewMock() Detector { return &mockDetector{} }

func (m *mockDetector) Name() string { return SourceMock }

var mockTable = map[string]Diagnosis{
	"cotton": {
		DiseaseName:   "Bacterial Blight",
		DiseaseNameGu: "બેક્ટેરિયલ બ્લાઇટ",
		Symptoms:      "Water-soaked lesions on leaves, angular spots",
		SymptomsGu:    "પાન પર પાણી ભીના ઘા, કોણીય ડાઘ",
		Treatment:     "Use copper-based fungicides, remove infected plants",
		TreatmentGu:   "કોપર આધારિત ફૂગનાશકનો ઉપયોગ કરો, સંક્રમિત છોડ દૂર કરો",
		Fertilizer:    "NPK 19:19:19, apply at 2kg per acre",
	},
	"wheat": {
		DiseaseName:   "Rust",
		DiseaseNameGu: "રસ્ટ",
		Symptoms:      "Orange-brown pustules on leaves and stems",
		SymptomsGu:    "પાન અને દાંડી પર નારંગી-બદામી પસ્ટ્યુલ",
		Treatment:     "Apply fungicides like Propiconazole",
		TreatmentGu:   "Propiconazole જેવા ફૂગનાશક લગાવો",
		Fertilizer:    "Urea 46% at 50kg per acre",
	},
	"rice": {
		DiseaseName:   "Blast",
		DiseaseNameGu: "બ્લાસ્ટ",
		Symptoms:      "Diamond-shaped lesions on leaves",
		SymptomsGu:    "પાન પર હીરા આકારના ઘા",
		Treatment:     "Use Tricyclazole or Carbendazim",
		TreatmentGu:   "Tricyclazole અથવા Carbendazim નો ઉપયોગ કરો",
		Fertilizer:    "DAP 18:46:0 at 100kg per acre",
	},
	"tomato": {
		DiseaseName:   "Early Blight",
		DiseaseNameGu: "અર્લી બ્લાઇટ",
		Symptoms:      "Brown spots with concentric rings on leaves",
		SymptomsGu:    "પાન પર કેન્દ્રિત રિંગ સાથે બદામી ડાઘ",
		Treatment:     "Apply Mancozeb or Chlorothalonil",
		TreatmentGu:   "Mancozeb અથવા Chlorothalonil લગાવો",
		Fertilizer:    "NPK 20:20:20 foliar spray",
	},
	"potato": {
		DiseaseName:   "Late Blight",
		DiseaseNameGu: "લેટ બ્લાઇટ",
		Symptoms:      "Dark lesions on leaves, white mold on underside",
		SymptomsGu:    "પાન પર ઘેરા ઘા, નીચેની બાજુએ સફેદ ફૂગ",
		Treatment:     "Use Metalaxyl or Mancozeb",
		TreatmentGu:   "Metalaxyl અથવા Mancozeb નો ઉપયોગ કરો",
		Fertilizer:    "Potash 60% at 40kg per acre",
	},
}

// Diagnose looks the crop up case-insensitively; unknown crops get the
// cotton entry. The image is never inspected.
func (m *mockDetector) Diagnose(ctx context.Context, _ Image, cropType string) (*Diagnosis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, ok := mockTable[strings.ToLower(strings.TrimSpace(cropType))]
	if !ok {
		d = mockTable["cotton"]
	}
	d.Source = SourceMock
	d.Report = fmt.Sprintf("%s:\n%s\n\n%s:\n- %s\n\n%s:\n- %s\n\n%s:\n- %s\n",
		labelDiseaseName, d.DiseaseNameGu,
		labelSymptoms, d.SymptomsGu,
		labelTreatment, d.TreatmentGu,
		labelFertilizer, d.Fertilizer)
	return &d, nil
}
