package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/thoughtcode-25/DIGI-FARM/internal/notify"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

const alertHistorySize = 50

// TemperatureAlert is one shed temperature excursion.
type TemperatureAlert struct {
	Temperature float64   `json:"temperature_c"`
	Status      string    `json:"status"` // "high" or "low"
	Message     string    `json:"message"`
	ObservedAt  time.Time `json:"observed_at"`
}

// AlertService watches shed temperature and fans alerts out across the
// configured notifier channels. Without sensor hardware attached, readings
// are simulated around the comfort band.
type AlertService struct {
	notifiers []notify.Notifier
	clock     clockwork.Clock
	minC      float64
	maxC      float64
	vetLine   string

	mu      sync.Mutex
	rng     *rand.Rand
	history []TemperatureAlert
}

func NewAlertService(notifiers []notify.Notifier, clock clockwork.Clock, minC, maxC float64, vetHotline string) *AlertService {
	return &AlertService{
		notifiers: notifiers,
		clock:     clock,
		minC:      minC,
		maxC:      maxC,
		vetLine:   vetHotline,
		rng:       rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// ReadTemperature simulates one sensor reading. Readings cluster inside the
// comfort band with occasional excursions either side.
func (s *AlertService) ReadTemperature() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	// band midpoint +/- up to 6C covers both comfortable and alerting reads
	mid := (s.minC + s.maxC) / 2
	return mid + (s.rng.Float64()*12 - 6)
}

// CheckTemperature evaluates a reading against the comfort band. Out-of-band
// readings are recorded and pushed to every notifier; nil means all is well.
func (s *AlertService) CheckTemperature(ctx context.Context, farmName, recipient string, tempC float64) *TemperatureAlert {
	var alert *TemperatureAlert
	switch {
	case tempC > s.maxC:
		alert = &TemperatureAlert{
			Temperature: tempC,
			Status:      "high",
			Message: fmt.Sprintf("ALERT: Shed temperature %.1fC is above the safe range (%.0f-%.0fC).\n%s, please:\n- Improve ventilation immediately\n- Provide cool drinking water\n- Watch for heat stress\nVet hotline: %s",
				tempC, s.minC, s.maxC, farmName, s.vetLine),
		}
	case tempC < s.minC:
		alert = &TemperatureAlert{
			Temperature: tempC,
			Status:      "low",
			Message: fmt.Sprintf("ALERT: Shed temperature %.1fC is below the safe range (%.0f-%.0fC).\n%s, please:\n- Close shed openings against drafts\n- Add bedding or brooding heat\n- Check young stock first\nVet hotline: %s",
				tempC, s.minC, s.maxC, farmName, s.vetLine),
		}
	default:
		return nil
	}

	alert.ObservedAt = s.clock.Now()
	s.record(*alert)
	s.broadcast(ctx, recipient, alert.Message)
	return alert
}

// SendDiseaseAlert notifies a farmer about a disease outbreak detected near
// their location.
func (s *AlertService) SendDiseaseAlert(ctx context.Context, recipient, diseaseName, location, farmName, farmType string) {
	animal := "livestock"
	switch farmType {
	case "chickens":
		animal = "poultry"
	case "pigs":
		animal = "pigs"
	}

	message := fmt.Sprintf("ALERT: %s detected near %s.\n%s, please:\n- Monitor %s health closely\n- Implement strict biosecurity\n- Report any sick animals\n- Contact veterinarian\nEmergency: %s",
		diseaseName, location, farmName, animal, s.vetLine)
	s.broadcast(ctx, recipient, message)
}

// RecentAlerts returns the most recent temperature alerts, newest first.
func (s *AlertService) RecentAlerts() []TemperatureAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TemperatureAlert, len(s.history))
	for i, a := range s.history {
		out[len(s.history)-1-i] = a
	}
	return out
}

func (s *AlertService) record(alert TemperatureAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, alert)
	if len(s.history) > alertHistorySize {
		s.history = s.history[len(s.history)-alertHistorySize:]
	}
}

func (s *AlertService) broadcast(ctx context.Context, recipient, message string) {
	for _, n := range s.notifiers {
		if err := n.Send(ctx, recipient, message); err != nil {
			logger.Warn("alert delivery failed", "channel", n.Name(), "error", err)
			continue
		}
		logger.Info("alert delivered", "channel", n.Name())
	}
}
