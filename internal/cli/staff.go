package cli

import (
	"errors"
	"strconv"

	"github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/service"
)

// updateTrackingInfo drives the staff tracking-update menu. The tracking
// ID is verified once before entering the menu; the field updates that
// follow are individual single-row transactions.
func (a *App) updateTrackingInfo(sess auth.Session) {
	var trackingID uint64
	for {
		id, ok := a.readUint("Input tracking ID to update: ")
		if !ok {
			return
		}
		ctx, cancel := opCtx()
		exists, err := a.tracking.Exists(ctx, id)
		cancel()
		if err != nil {
			a.report(err)
			return
		}
		if exists {
			trackingID = id
			break
		}
		a.printf("Invalid tracking ID. Please try again.\n")
	}

	for {
		a.printf("\nUPDATE TRACKING MENU\n--------------------\n")
		a.printf("1. Update tracking status\n2. Update current location\n")
		a.printf("3. Update courier name\n4. Update additional comments\n9. < EXIT\n")
		choice, ok := a.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			if !a.staffField(sess, "Enter new status (1-50 characters): ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.tracking.UpdateStatus(ctx, sess.Login, trackingID, v)
			}) {
				return
			}
		case 2:
			if !a.staffField(sess, "Enter new current location (1-60 characters): ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.tracking.UpdateLocation(ctx, sess.Login, trackingID, v)
			}) {
				return
			}
		case 3:
			if !a.staffField(sess, "Enter new courier name (1-60 characters): ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.tracking.UpdateCourier(ctx, sess.Login, trackingID, v)
			}) {
				return
			}
		case 4:
			if !a.staffField(sess, "Enter additional comments: ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.tracking.UpdateComments(ctx, sess.Login, trackingID, v)
			}) {
				return
			}
		case 9:
			return
		default:
			a.printf("Unrecognized choice!\n")
		}
	}
}

// staffField applies one privileged field update with re-prompt-on-invalid
// semantics. It returns false when the caller should fall back to the
// previous menu (authorization or store failure).
func (a *App) staffField(sess auth.Session, prompt string, apply func(string) error) bool {
	for {
		v, ok := a.readLine(prompt)
		if !ok {
			return false
		}
		err := apply(v)
		if err == nil {
			a.printf("Saved.\n")
			return true
		}
		if errors.Is(err, service.ErrInvalidField) {
			a.printf("Invalid value, please try again.\n")
			continue
		}
		a.report(err)
		return false
	}
}

// updateCatalog drives the manager catalog-update menu. gameID existence
// is checked once before entering the menu, mirroring the tracking flow.
func (a *App) updateCatalog(sess auth.Session) {
	var gameID string
	for {
		id, ok := a.readLine("Input gameID to update: ")
		if !ok {
			return
		}
		ctx, cancel := opCtx()
		exists, err := a.admin.GameExists(ctx, sess.Login, id)
		cancel()
		if err != nil {
			a.report(err)
			return
		}
		if exists {
			gameID = id
			break
		}
		a.printf("Invalid gameID. Please try again.\n")
	}

	for {
		a.printf("\nUPDATE CATALOG MENU\n-------------------\n")
		a.printf("1. Update game name\n2. Update game genre\n3. Update game price\n")
		a.printf("4. Update game description\n5. Update game imageURL\n9. < EXIT\n")
		choice, ok := a.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			if !a.staffField(sess, "Enter new game name (1-300 characters): ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.admin.UpdateGameName(ctx, sess.Login, gameID, v)
			}) {
				return
			}
		case 2:
			if !a.staffField(sess, "Enter new genre (1-30 characters): ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.admin.UpdateGenre(ctx, sess.Login, gameID, v)
			}) {
				return
			}
		case 3:
			if !a.staffField(sess, "Enter new price: ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.admin.UpdatePrice(ctx, sess.Login, gameID, v)
			}) {
				return
			}
		case 4:
			if !a.staffField(sess, "Enter new description: ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.admin.UpdateDescription(ctx, sess.Login, gameID, v)
			}) {
				return
			}
		case 5:
			if !a.staffField(sess, "Enter new image URL (1-20 characters): ", func(v string) error {
				ctx, cancel := opCtx()
				defer cancel()
				return a.admin.UpdateImageURL(ctx, sess.Login, gameID, v)
			}) {
				return
			}
		case 9:
			return
		default:
			a.printf("Unrecognized choice!\n")
		}
	}
}

// updateUser drives the manager user-administration menu. Target existence
// is deliberately not verified: an update against an unknown login matches
// zero rows and silently succeeds.
func (a *App) updateUser(sess auth.Session) {
	target, ok := a.readLine("Enter login of user to update: ")
	if !ok {
		return
	}

	a.printf("\nUPDATE USER MENU\n----------------\n")
	a.printf("1. Password\n2. Role\n3. Favorite games\n4. Phone number\n")
	a.printf("5. Number of overdue games\n6. View user\n9. < EXIT\n")
	choice, ok := a.readChoice()
	if !ok {
		return
	}
	switch choice {
	case 1:
		a.staffField(sess, "Enter new password (1-30 characters): ", func(v string) error {
			ctx, cancel := opCtx()
			defer cancel()
			return a.admin.UpdateUserPassword(ctx, sess.Login, target, v)
		})
	case 2:
		a.printf("Available roles:\n1. Customer\n2. Manager\n3. Employee\n")
		roleChoice, ok := a.readChoice()
		if !ok {
			return
		}
		var role model.Role
		switch roleChoice {
		case 1:
			role = model.RoleCustomer
		case 2:
			role = model.RoleManager
		case 3:
			role = model.RoleEmployee
		default:
			a.printf("Invalid choice.\n")
			return
		}
		ctx, cancel := opCtx()
		defer cancel()
		if err := a.admin.UpdateUserRole(ctx, sess.Login, target, role); err != nil {
			a.report(err)
			return
		}
		a.printf("Role updated to %s.\n", role)
	case 3:
		a.staffField(sess, "Enter favorite game(s): ", func(v string) error {
			ctx, cancel := opCtx()
			defer cancel()
			return a.admin.ReplaceFavoriteGames(ctx, sess.Login, target, v)
		})
	case 4:
		a.staffField(sess, "Enter new phone number: ", func(v string) error {
			ctx, cancel := opCtx()
			defer cancel()
			return a.admin.UpdateUserPhone(ctx, sess.Login, target, v)
		})
	case 5:
		a.staffField(sess, "Enter new number of overdue games: ", func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return service.ErrInvalidField
			}
			ctx, cancel := opCtx()
			defer cancel()
			return a.admin.UpdateOverdueCount(ctx, sess.Login, target, n)
		})
	case 6:
		ctx, cancel := opCtx()
		defer cancel()
		u, err := a.admin.ViewUser(ctx, sess.Login, target)
		if err != nil {
			a.report(err)
			return
		}
		a.printf("Login: %s\nRole: %s\nFavorite Games: %s\nPhone: %s\nOverdue Games: %d\n",
			u.Login, u.Role, u.FavGames, u.PhoneNum, u.NumOverdueGames)
	case 9:
		return
	default:
		a.printf("Unrecognized choice!\n")
	}
}
