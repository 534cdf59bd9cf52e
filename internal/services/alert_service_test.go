package services

import (
	"context"
	"strings"
	"testing"

	"github.com/thoughtcode-25/DIGI-FARM/internal/notify"
)

func newAlertFixture(t *testing.T) (*AlertService, *fakeNotifier) {
	t.Helper()
	fake := &fakeNotifier{}
	svc := NewAlertService([]notify.Notifier{fake}, testClock(t), 22, 28, "1800-XXX-XXXX")
	return svc, fake
}

func TestCheckTemperatureInBand(t *testing.T) {
	svc, fake := newAlertFixture(t)

	if alert := svc.CheckTemperature(context.Background(), "Yashoda Farm", "9876543210", 25.0); alert != nil {
		t.Errorf("in-band reading raised alert: %+v", alert)
	}
	if len(fake.messages) != 0 {
		t.Errorf("in-band reading sent %d messages", len(fake.messages))
	}
}

func TestCheckTemperatureHigh(t *testing.T) {
	svc, fake := newAlertFixture(t)

	alert := svc.CheckTemperature(context.Background(), "Yashoda Farm", "9876543210", 33.5)
	if alert == nil {
		t.Fatal("hot reading raised no alert")
	}
	if alert.Status != "high" {
		t.Errorf("Status = %s, want high", alert.Status)
	}
	if !strings.Contains(alert.Message, "33.5") || !strings.Contains(alert.Message, "Yashoda Farm") {
		t.Errorf("alert message incomplete: %q", alert.Message)
	}
	if len(fake.messages) != 1 {
		t.Errorf("sent %d messages, want 1", len(fake.messages))
	}
}

func TestCheckTemperatureLow(t *testing.T) {
	svc, _ := newAlertFixture(t)

	alert := svc.CheckTemperature(context.Background(), "Yashoda Farm", "9876543210", 15.0)
	if alert == nil || alert.Status != "low" {
		t.Fatalf("cold reading alert = %+v, want status low", alert)
	}
}

func TestRecentAlertsNewestFirst(t *testing.T) {
	svc, _ := newAlertFixture(t)

	svc.CheckTemperature(context.Background(), "F", "", 30.0)
	svc.CheckTemperature(context.Background(), "F", "", 18.0)

	recent := svc.RecentAlerts()
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].Status != "low" || recent[1].Status != "high" {
		t.Errorf("order = %s, %s; want low, high", recent[0].Status, recent[1].Status)
	}
}

func TestAlertFanOutSurvivesChannelFailure(t *testing.T) {
	dead := &fakeNotifier{fail: true}
	live := &fakeNotifier{}
	svc := NewAlertService([]notify.Notifier{dead, live}, testClock(t), 22, 28, "1800-XXX-XXXX")

	svc.SendDiseaseAlert(context.Background(), "9876543210", "Avian Influenza", "Rajkot", "Yashoda Farm", "chickens")

	if len(live.messages) != 1 {
		t.Fatalf("live channel got %d messages, want 1", len(live.messages))
	}
	if !strings.Contains(live.messages[0], "Avian Influenza") || !strings.Contains(live.messages[0], "poultry") {
		t.Errorf("disease alert body: %q", live.messages[0])
	}
}

func TestReadTemperatureWithinSimulationRange(t *testing.T) {
	svc, _ := newAlertFixture(t)

	for i := 0; i < 100; i++ {
		r := svc.ReadTemperature()
		if r < 19 || r > 31 {
			t.Fatalf("reading %.2f outside simulation range", r)
		}
	}
}
