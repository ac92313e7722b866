package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/weather/controller"
)

type Report struct {
	Temperature     int    `json:"temperature"`
	Humidity        int    `json:"humidity"`
	WindSpeed       int    `json:"wind_speed"`
	RainProbability int    `json:"rain_probability"`
	Condition       string `json:"condition"`
	ConditionGu     string `json:"condition_guj"`
}

var fixedReport = Report{
	Temperature:     28,
	Humidity:        65,
	WindSpeed:       12,
	RainProbability: 30,
	Condition:       "Partly Cloudy",
	ConditionGu:     "અંશતઃ વાદળછાયા",
}

type weatherCtrl struct{}

func NewWeatherController() controller.WeatherController { return &weatherCtrl{} }

// Current returns a fixed report. lat and lon are accepted but ignored
// until a real provider is wired.
func (h *weatherCtrl) Current(c echo.Context) error {
	return response.OK(c, echo.Map{"data": fixedReport})
}
