package teams

import (
	"context"

	"teamdeck/internal/api"
)

// Dispatcher performs the HTTP calls backing each operation. Each call
// resolves exactly once: either a payload or an error. Implemented by
// *api.Client; tests substitute fakes.
type Dispatcher interface {
	ListTeams(ctx context.Context) (api.TeamPage, error)
	Page(ctx context.Context, pageURL string) (api.TeamPage, error)
	CreateTeam(ctx context.Context, teamName string) (api.Team, error)
	RemoveSelf(ctx context.Context, teamID int) error
	Invite(ctx context.Context, teamID int, email string) error
}

// Loader toggles the global busy indicator.
type Loader interface {
	Start(message string)
	Stop()
}

// Level classifies a notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
)

// String returns the level's display name.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notifier emits transient user-facing notifications.
type Notifier interface {
	Notify(level Level, message string)
}

// Navigator switches to a named view.
type Navigator interface {
	Go(view string)
}

// Dialogs asks the user for confirmation or free-form input. Both calls
// block until the user answers; ok is false when the dialog was dismissed.
type Dialogs interface {
	Confirm(ctx context.Context, message string) (ok bool, err error)
	Prompt(ctx context.Context, title, placeholder string) (value string, ok bool, err error)
}

// Store is the key-value store used to hand the transient error message
// across views.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// No-op collaborator implementations, used when a dependency is not wired
// (and by tests that don't care about a particular collaborator).

type nopLoader struct{}

func (nopLoader) Start(string) {}
func (nopLoader) Stop()        {}

type nopNotifier struct{}

func (nopNotifier) Notify(Level, string) {}

type nopNavigator struct{}

func (nopNavigator) Go(string) {}

type nopDialogs struct{}

func (nopDialogs) Confirm(context.Context, string) (bool, error) { return false, nil }
func (nopDialogs) Prompt(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}

type nopStore struct{}

func (nopStore) Get(string) (string, error) { return "", nil }
func (nopStore) Set(string, string) error   { return nil }
func (nopStore) Delete(string) error        { return nil }
