package cli

import (
	"errors"

	"github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/service"
)

// createUser registers a new customer account.
func (a *App) createUser() {
	login, ok := a.readLine("\tEnter login: ")
	if !ok {
		return
	}
	password, ok := a.readLine("\tEnter password: ")
	if !ok {
		return
	}
	phone, ok := a.readLine("\tEnter phone number: ")
	if !ok {
		return
	}
	ctx, cancel := opCtx()
	defer cancel()
	if err := a.auth.Register(ctx, login, password, phone); err != nil {
		a.report(err)
		return
	}
	a.printf("User successfully added!\n")
}

// logIn authenticates interactively. Bad credentials offer an explicit
// retry; declining returns to the main menu.
func (a *App) logIn() (string, bool) {
	for {
		login, ok := a.readLine("Enter login: ")
		if !ok {
			return "", false
		}
		password, ok := a.readLine("Enter password: ")
		if !ok {
			return "", false
		}
		ctx, cancel := opCtx()
		_, token, err := a.auth.Authenticate(ctx, login, password)
		cancel()
		if err == nil {
			a.printf("Logged in!\n")
			return token, true
		}
		if !errors.Is(err, service.ErrInvalidCredentials) {
			a.report(err)
			return "", false
		}
		a.printf("Invalid login.\n")
		if !a.yes("Would you like to try again?") {
			return "", false
		}
	}
}

// viewProfile prints the caller's own account.
func (a *App) viewProfile(sess auth.Session) {
	ctx, cancel := opCtx()
	defer cancel()
	u, err := a.profile.View(ctx, sess.Login)
	if err != nil {
		a.report(err)
		return
	}
	a.printf("Profile:\n")
	a.printf("  Login: %s\n", u.Login)
	a.printf("  Role: %s\n", u.Role)
	a.printf("  Favorite Games: %s\n", u.FavGames)
	a.printf("  Phone Number: %s\n", u.PhoneNum)
	a.printf("  Overdue Games: %d\n", u.NumOverdueGames)
}

// updateProfile re-authenticates the caller and then offers the three
// self-service updates. Note that favorites are APPENDED here; the
// manager-side update replaces the list instead.
func (a *App) updateProfile(sess auth.Session) {
	a.printf("Re-enter your password to update your profile.\n")
	password, ok := a.readLine("Enter password: ")
	if !ok {
		return
	}
	ctx, cancel := opCtx()
	_, _, err := a.auth.Authenticate(ctx, sess.Login, password)
	cancel()
	if err != nil {
		a.printf("Invalid login.\n")
		return
	}

	a.printf("Options:\n1. Add Favorite Game\n2. Change Password\n3. Change Phone Number\n")
	choice, ok := a.readChoice()
	if !ok {
		return
	}
	switch choice {
	case 1:
		game, ok := a.readLine("Enter additional favorite game: ")
		if !ok {
			return
		}
		ctx, cancel := opCtx()
		defer cancel()
		if err := a.profile.AddFavoriteGame(ctx, sess.Login, game); err != nil {
			a.report(err)
			return
		}
		a.printf("Game added.\n")
	case 2:
		a.promptUntilAccepted("Enter new password (1-30 characters): ", func(v string) error {
			ctx, cancel := opCtx()
			defer cancel()
			return a.profile.ChangePassword(ctx, sess.Login, v)
		})
	case 3:
		a.promptUntilAccepted("Enter new phone number: ", func(v string) error {
			ctx, cancel := opCtx()
			defer cancel()
			return a.profile.ChangePhone(ctx, sess.Login, v)
		})
	default:
		a.printf("Unrecognized choice!\n")
	}
}

// promptUntilAccepted reads a value and applies it, re-prompting the same
// field while the service reports a validation failure. Any other failure
// aborts back to the caller's menu.
func (a *App) promptUntilAccepted(prompt string, apply func(string) error) {
	for {
		v, ok := a.readLine(prompt)
		if !ok {
			return
		}
		err := apply(v)
		if err == nil {
			a.printf("Saved.\n")
			return
		}
		if errors.Is(err, service.ErrInvalidField) {
			a.printf("Invalid value, please try again.\n")
			continue
		}
		a.report(err)
		return
	}
}
