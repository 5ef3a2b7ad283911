package tui

import (
	"context"
	"sync"

	"teamdeck/internal/teams"

	tea "github.com/charmbracelet/bubbletea"
)

// dialogKind distinguishes the two modal dialog shapes.
type dialogKind int

const (
	dialogConfirm dialogKind = iota
	dialogPrompt
)

// dialogRequest is a pending modal dialog. The requesting goroutine blocks
// on resp; the Update loop answers exactly once when the user decides.
type dialogRequest struct {
	kind        dialogKind
	message     string // confirmation text, or prompt title
	placeholder string
	resp        chan dialogResponse
}

// dialogResponse is the user's answer. ok is false when the dialog was
// dismissed.
type dialogResponse struct {
	value string
	ok    bool
}

// Bridge adapts the controller's collaborator interfaces to Bubbletea
// messages. Controller operations run in command goroutines; the bridge
// forwards their side effects to the program's Update loop with Send.
//
// The bridge must be attached to a running program before operations fire.
// Until then messages are dropped and dialogs answer "dismissed", so a
// controller wired to an unattached bridge stays safe to call.
type Bridge struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewBridge creates an unattached Bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach connects the bridge to the running program.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// post sends a message to the program, dropping it when unattached.
// Returns whether the message was delivered.
func (b *Bridge) post(msg tea.Msg) bool {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

// Start implements teams.Loader.
func (b *Bridge) Start(message string) {
	b.post(loaderMsg{active: true, message: message})
}

// Stop implements teams.Loader.
func (b *Bridge) Stop() {
	b.post(loaderMsg{active: false})
}

// Notify implements teams.Notifier.
func (b *Bridge) Notify(level teams.Level, message string) {
	b.post(notifyMsg{level: level, message: message})
}

// Go implements teams.Navigator.
func (b *Bridge) Go(view string) {
	b.post(navigateMsg{view: view})
}

// Confirm implements teams.Dialogs. It blocks until the user answers or the
// context is cancelled.
func (b *Bridge) Confirm(ctx context.Context, message string) (bool, error) {
	req := &dialogRequest{
		kind:    dialogConfirm,
		message: message,
		resp:    make(chan dialogResponse, 1),
	}
	if !b.post(dialogMsg{req: req}) {
		return false, nil
	}

	select {
	case r := <-req.resp:
		return r.ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Prompt implements teams.Dialogs. It blocks until the user submits or
// dismisses the input, or the context is cancelled.
func (b *Bridge) Prompt(ctx context.Context, title, placeholder string) (string, bool, error) {
	req := &dialogRequest{
		kind:        dialogPrompt,
		message:     title,
		placeholder: placeholder,
		resp:        make(chan dialogResponse, 1),
	}
	if !b.post(dialogMsg{req: req}) {
		return "", false, nil
	}

	select {
	case r := <-req.resp:
		return r.value, r.ok, nil
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

// answer resolves a pending dialog. Safe to call once per request; the
// response channel is buffered so the Update loop never blocks.
func (r *dialogRequest) answer(value string, ok bool) {
	r.resp <- dialogResponse{value: value, ok: ok}
}
