package service

import (
	"errors"
	"slices"
	"testing"
)

type fakeService struct {
	name     string
	startErr error
	log      *[]string
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return nil
}

func TestGroupOrder(t *testing.T) {
	var log []string
	var g Group
	g.Add(&fakeService{name: "a", log: &log})
	g.Add(nil)
	g.Add(&fakeService{name: "b", log: &log})

	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := g.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	want := []string{"start a", "start b", "stop b", "stop a"}
	if !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if names := g.Names(); !slices.Equal(names, []string{"a", "b"}) {
		t.Errorf("Expected [a b], got %v", names)
	}
}

func TestGroupRollsBackOnFailure(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	var g Group
	g.Add(&fakeService{name: "a", log: &log})
	g.Add(&fakeService{name: "b", startErr: boom, log: &log})
	g.Add(&fakeService{name: "c", log: &log})

	err := g.Start()
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}
	want := []string{"start a", "stop a"}
	if !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}
