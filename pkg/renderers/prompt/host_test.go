package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	infoMessages []string
	configs      []InputConfig
	inputPos     int
	passPos      int
	confirmPos   int
	err          error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestHost_RepromptsUntilValid(t *testing.T) {
	driver := &stubDriver{inputs: []string{"nope", "me@example.com"}}
	f := field.New(
		field.WithName("email"),
		field.WithLabel("Email"),
		field.WithPlaceholder("you@example.com"),
		field.WithPredicate(validation.Email()),
	)

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "me@example.com" {
		t.Fatalf("value = %q", got)
	}
	if f.Mounted() {
		t.Fatalf("field mounted by Run should be unmounted afterwards")
	}

	want := []InputConfig{
		{Message: "Email", Help: "you@example.com"},
		{Message: "Email", Default: "nope", Help: "you@example.com"},
	}
	if diff := cmp.Diff(want, driver.configs); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{DefaultTheme.ErrorPrefix + "invalid value"}, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestHost_LeavesStateOfMountedField(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Ada"}}
	f := field.NewMounted(field.WithName("name"))

	var states []field.State
	f.Subscribe(func(s field.State) { states = append(states, s) })

	if _, err := New(WithPromptDriver(driver)).Run(context.Background(), f); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !f.Mounted() {
		t.Fatalf("caller mounted field should stay mounted")
	}

	want := field.State{Value: "Ada", Activated: true}
	if diff := cmp.Diff(want, f.Snapshot()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	// focus, input, blur; no predicate means validation does not notify.
	if len(states) != 3 {
		t.Fatalf("expected 3 notifications, got %d: %+v", len(states), states)
	}
	if driver.configs[0].Message != "name" {
		t.Fatalf("name should be used when there is no label, got %q", driver.configs[0].Message)
	}
}

func TestHost_PasswordKind(t *testing.T) {
	driver := &stubDriver{passwords: []string{"s3cret"}}
	f := field.New(field.WithInputKind(field.KindPassword), field.WithLabel("Password"))

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), f)
	if err != nil || got != "s3cret" {
		t.Fatalf("run = %q, %v", got, err)
	}
	if driver.inputPos != 0 || driver.passPos != 1 {
		t.Fatalf("password prompt not used")
	}
}

func TestHost_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"a", "b"}}
	f := field.New(field.WithLabel("Code"), field.WithPredicate(validation.MinLength(3)))

	_, err := New(WithPromptDriver(driver), WithMaxAttempts(2), WithInvalidMessage("too short")).Run(context.Background(), f)
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if !strings.Contains(err.Error(), "Code after 2 attempts") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(driver.infoMessages) != 2 || !strings.HasSuffix(driver.infoMessages[0], "too short") {
		t.Fatalf("messages = %v", driver.infoMessages)
	}
}

func TestHost_ClearPrompt(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x", "xyz"}, confirm: []bool{true}}
	f := field.New(field.WithLabel("Code"), field.WithPredicate(validation.MinLength(3)))

	got, err := New(WithPromptDriver(driver), WithClearPrompt(true)).Run(context.Background(), f)
	if err != nil || got != "xyz" {
		t.Fatalf("run = %q, %v", got, err)
	}
	if driver.configs[1].Default != "" {
		t.Fatalf("cleared field should not offer the rejected value, got %q", driver.configs[1].Default)
	}
}

func TestHost_Abort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	f := field.NewMounted()

	_, err := New(WithPromptDriver(driver)).Run(context.Background(), f)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if f.Snapshot().Focused {
		t.Fatalf("aborted prompt should blur the field")
	}
}

func TestHost_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithPromptDriver(&stubDriver{})).Run(ctx, field.New())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
