package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/aquaguard/water-monitor/internal/config"
	"github.com/aquaguard/water-monitor/internal/thresholds"
)

// Regional baseline characteristics for the demo zones.
type zoneProfile struct {
	code             string
	tempOffset       float64
	pressureFactor   float64
	flowFactor       float64
	conductivityBase float64
}

var zones = []zoneProfile{
	{"A", 0, 1.0, 1.0, 450},  // Industrial Zone
	{"B", 2, 0.9, 0.85, 380}, // Residential Area
	{"C", -1, 1.1, 1.1, 420}, // Commercial District
}

type reading struct {
	Zone         string    `json:"zone"`
	Timestamp    time.Time `json:"timestamp"`
	Temperature  float64   `json:"temperature"`
	Flow         float64   `json:"flow"`
	Pressure     float64   `json:"pressure"`
	Chlorine     float64   `json:"chlorine"`
	PH           float64   `json:"ph"`
	Turbidity    float64   `json:"turbidity"`
	Conductivity float64   `json:"conductivity"`
}

func clip(v float64, m thresholds.Metric) float64 {
	r := thresholds.SensorRanges[m]
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// simulate draws one reading for a zone with the physical couplings the real
// network exhibits: temperature drives conductivity and chlorine decay, low
// pressure stirs sediment, stagnation depletes disinfectant.
func simulate(z zoneProfile, contamination bool) reading {
	temperature := clip(18+z.tempOffset+rand.NormFloat64()*2, thresholds.Temperature)
	flow := clip(2.5*z.flowFactor+rand.NormFloat64()*0.5, thresholds.Flow)
	pressure := clip(4.0*z.pressureFactor+rand.NormFloat64()*0.3, thresholds.Pressure)
	ph := clip(7.2+rand.NormFloat64()*0.3, thresholds.PH)

	// Conductivity rises ~2% per °C above 20.
	conductivity := clip(z.conductivityBase*(1+0.02*(temperature-20))+rand.NormFloat64()*30, thresholds.Conductivity)

	chlorine := 1.2
	turbidity := 0.4
	if pressure < 3.0 {
		turbidity += (3.0 - pressure) * 0.8
	}
	if temperature > 25 {
		chlorine -= (temperature - 25) * 0.03
	}
	switch {
	case flow < 1.0:
		chlorine -= 0.25
	case flow < 1.5:
		chlorine -= 0.1
	}
	if flow < 1.5 && temperature > 22 {
		chlorine -= 0.05
	}
	if pressure < 2.5 {
		chlorine -= 0.1
		turbidity += 0.3
	}
	chlorine += rand.NormFloat64() * 0.05
	turbidity += rand.Float64() * 0.15

	if contamination {
		switch rand.Intn(4) {
		case 0: // chemical
			ph += []float64{-1.5, 1.5}[rand.Intn(2)]
			chlorine *= 0.3
			conductivity *= 1.5
		case 1: // physical
			pressure *= 0.5
			turbidity *= 5
			conductivity *= 1.3
		case 2: // biological
			temperature += 5
			chlorine *= 0.35
			turbidity *= 3
		default: // leak
			pressure *= 0.4
			turbidity *= 4
			chlorine *= 0.5
			conductivity *= 1.2
		}
	}

	return reading{
		Zone:         z.code,
		Timestamp:    time.Now(),
		Temperature:  temperature,
		Flow:         flow,
		Pressure:     pressure,
		Chlorine:     clip(chlorine, thresholds.Chlorine),
		PH:           clip(ph, thresholds.PH),
		Turbidity:    clip(turbidity, thresholds.Turbidity),
		Conductivity: clip(conductivity, thresholds.Conductivity),
	}
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < 100; i++ {
		for _, z := range zones {
			// Roughly one contamination event in twenty cycles.
			r := simulate(z, rand.Intn(20) == 0)
			payload, _ := json.Marshal(r)
			token := client.Publish(config.MQTTTopic(), 0, false, payload)
			token.Wait()
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
