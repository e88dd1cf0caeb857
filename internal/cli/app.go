// Package cli implements the interactive console surface: numbered menus,
// prompts and re-prompt loops. It owns no business rules; every decision
// is delegated to the service layer, and the surface only chooses how to
// recover: validation failures re-prompt the same field, authorization and
// persistence failures print one line and fall back to the previous menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/config"
	"github.com/iliyamo/game-rental-store/internal/repository"
	"github.com/iliyamo/game-rental-store/internal/service"
)

// opTimeout bounds every store-backed operation triggered from a prompt.
const opTimeout = 5 * time.Second

// App wires the services to stdin/stdout and runs the menu loop.
type App struct {
	cfg        config.Config
	auth       *service.AuthService
	catalog    *service.CatalogService
	orders     *service.OrderService
	tracking   *service.TrackingService
	admin      *service.AdminService
	visibility *service.VisibilityService
	profile    *service.ProfileService

	in  *bufio.Scanner
	out io.Writer
}

// New constructs the console application. All services must be non-nil.
func New(cfg config.Config, authSvc *service.AuthService, catalogSvc *service.CatalogService, orderSvc *service.OrderService, trackingSvc *service.TrackingService, adminSvc *service.AdminService, visibilitySvc *service.VisibilityService, profileSvc *service.ProfileService, in io.Reader, out io.Writer) *App {
	if authSvc == nil || catalogSvc == nil || orderSvc == nil || trackingSvc == nil || adminSvc == nil || visibilitySvc == nil || profileSvc == nil {
		panic("nil service passed to cli.New")
	}
	return &App{
		cfg:        cfg,
		auth:       authSvc,
		catalog:    catalogSvc,
		orders:     orderSvc,
		tracking:   trackingSvc,
		admin:      adminSvc,
		visibility: visibilitySvc,
		profile:    profileSvc,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run drives the pre-login menu until the user exits or input ends.
func (a *App) Run() error {
	a.printf("\n*** Game Rental Store ***\n")
	for {
		a.printf("\nMAIN MENU\n---------\n")
		a.printf("1. Create user\n2. Log in\n9. Exit\n")
		choice, ok := a.readChoice()
		if !ok {
			return nil // input closed
		}
		switch choice {
		case 1:
			a.createUser()
		case 2:
			if token, ok := a.logIn(); ok {
				a.userMenu(token)
			}
		case 9:
			a.printf("Bye!\n")
			return nil
		default:
			a.printf("Unrecognized choice!\n")
		}
	}
}

// userMenu drives the post-login menu until logout or session expiry. The
// session token is re-verified on every iteration; the surface never holds
// a bare login string.
func (a *App) userMenu(token string) {
	for {
		sess, err := auth.ParseSessionToken(a.cfg.JWTSecret, token)
		if err != nil {
			a.printf("Session expired, please log in again.\n")
			return
		}
		a.printf("\nMAIN MENU (%s)\n---------\n", sess.Login)
		a.printf("1. View Profile\n2. Update Profile\n3. View Catalog\n4. Place Rental Order\n")
		a.printf("5. View Full Rental Order History\n6. View Past 5 Rental Orders\n")
		a.printf("7. View Rental Order Information\n8. View Tracking Information\n")
		a.printf("9. Update Tracking Information\n10. Update Catalog\n11. Update User\n")
		a.printf(".........................\n20. Log out\n")
		choice, ok := a.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			a.viewProfile(sess)
		case 2:
			a.updateProfile(sess)
		case 3:
			a.viewCatalog()
		case 4:
			a.placeOrder(sess)
		case 5:
			a.viewAllOrders(sess)
		case 6:
			a.viewRecentOrders(sess)
		case 7:
			a.viewOrderInfo(sess)
		case 8:
			a.viewTrackingInfo(sess)
		case 9:
			a.updateTrackingInfo(sess)
		case 10:
			a.updateCatalog(sess)
		case 11:
			a.updateUser(sess)
		case 20:
			a.printf("Logged out.\n")
			return
		default:
			a.printf("Unrecognized choice!\n")
		}
	}
}

// ---- input helpers ----

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine prompts and returns one trimmed line. ok is false when input
// has ended.
func (a *App) readLine(prompt string) (string, bool) {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// readChoice prompts until the user enters an integer.
func (a *App) readChoice() (int, bool) {
	for {
		line, ok := a.readLine("Please make your choice: ")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			a.printf("Your input is invalid!\n")
			continue
		}
		return n, true
	}
}

// readUint prompts until the user enters an unsigned integer.
func (a *App) readUint(prompt string) (uint64, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			a.printf("Your input is invalid!\n")
			continue
		}
		return n, true
	}
}

// yes reports whether the user answered yes to a prompt.
func (a *App) yes(prompt string) bool {
	line, ok := a.readLine(prompt + " (yes/no): ")
	if !ok {
		return false
	}
	return strings.EqualFold(line, "yes") || strings.EqualFold(line, "y")
}

// opCtx returns the bounded context used for a single operation.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// report prints a one-line diagnostic for an operation failure.
func (a *App) report(err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		a.printf("You are not allowed to perform this action.\n")
	case errors.Is(err, service.ErrNotFound):
		a.printf("Not found.\n")
	case errors.Is(err, service.ErrInvalidField):
		a.printf("Invalid value.\n")
	case errors.Is(err, service.ErrEmptyOrder):
		a.printf("No valid items; order was not placed.\n")
	case errors.Is(err, repository.ErrLoginExists):
		a.printf("That login is already taken.\n")
	case errors.Is(err, service.ErrPersistence):
		a.printf("Store error; the operation was aborted.\n")
	default:
		a.printf("Operation failed: %v\n", err)
	}
}
