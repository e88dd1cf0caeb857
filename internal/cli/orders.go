package cli

import (
	"github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
	"github.com/iliyamo/game-rental-store/internal/service"
	"github.com/iliyamo/game-rental-store/internal/utils"
)

// viewCatalog runs one of the five mutually exclusive browse modes.
func (a *App) viewCatalog() {
	a.printf("1. View All\n2. Filter by Genre\n3. Filter by Max Price\n")
	a.printf("4. Sort by Highest to Lowest Price\n5. Sort by Lowest to Highest Price\n")
	choice, ok := a.readChoice()
	if !ok {
		return
	}
	var q repository.CatalogQuery
	switch choice {
	case 1:
		q.Filter = repository.FilterAll
	case 2:
		genre, ok := a.readLine("Enter genre: ")
		if !ok {
			return
		}
		q.Filter = repository.FilterByGenre
		q.Genre = genre
	case 3:
		for {
			line, ok := a.readLine("Enter max price: ")
			if !ok {
				return
			}
			cents, err := utils.ParsePrice(line)
			if err != nil {
				a.printf("Your input is invalid!\n")
				continue
			}
			q.Filter = repository.FilterByMaxPrice
			q.MaxPriceCents = cents
			break
		}
	case 4:
		q.Filter = repository.SortPriceDesc
	case 5:
		q.Filter = repository.SortPriceAsc
	default:
		a.printf("Invalid choice.\n")
		return
	}

	ctx, cancel := opCtx()
	defer cancel()
	entries, err := a.catalog.Browse(ctx, q)
	if err != nil {
		a.report(err)
		return
	}
	if len(entries) == 0 {
		a.printf("No results.\n")
		return
	}
	for _, e := range entries {
		a.printf("%s | %s | %s | %s\n", e.GameID, e.GameName, e.Genre, utils.FormatCents(e.PriceCents))
	}
}

// placeOrder collects (gameID, quantity) pairs and submits them as one
// order. Unknown gameIDs are reported and skipped rather than aborting.
func (a *App) placeOrder(sess auth.Session) {
	var items []service.ItemRequest
	for {
		gameID, ok := a.readLine("Enter gameID: ")
		if !ok {
			return
		}
		units, ok := a.readUint("Enter units ordered: ")
		if !ok {
			return
		}
		items = append(items, service.ItemRequest{GameID: gameID, Quantity: uint32(units)})
		if !a.yes("Do you want to add another game?") {
			break
		}
	}

	ctx, cancel := opCtx()
	defer cancel()
	order, skipped, err := a.orders.PlaceOrder(ctx, sess.Login, items)
	for _, id := range skipped {
		a.printf("Invalid gameID %q, item skipped.\n", id)
	}
	if err != nil {
		a.report(err)
		return
	}
	a.printf("Rental order placed successfully!\n")
	a.printf("Order ID: %d\n", order.RentalOrderID)
	a.printf("Total price: %s\n", utils.FormatCents(order.TotalPriceCents))
	a.printf("Due date: %s\n", order.DueDate.Format("2006-01-02"))
}

// viewAllOrders prints the caller's complete order history.
func (a *App) viewAllOrders(sess auth.Session) {
	ctx, cancel := opCtx()
	defer cancel()
	summaries, err := a.visibility.AllOrders(ctx, sess.Login)
	if err != nil {
		a.report(err)
		return
	}
	a.printSummaries(summaries)
}

// viewRecentOrders prints the caller's five newest orders.
func (a *App) viewRecentOrders(sess auth.Session) {
	ctx, cancel := opCtx()
	defer cancel()
	summaries, err := a.visibility.RecentOrders(ctx, sess.Login)
	if err != nil {
		a.report(err)
		return
	}
	a.printSummaries(summaries)
}

func (a *App) printSummaries(summaries []model.OrderSummary) {
	if len(summaries) == 0 {
		a.printf("Rental history not found.\n")
		return
	}
	for _, s := range summaries {
		a.printf("Order %d | total %s | placed %s | due %s\n",
			s.RentalOrderID, utils.FormatCents(s.TotalPriceCents),
			s.OrderTimestamp.Format("2006-01-02 15:04:05"), s.DueDate.Format("2006-01-02"))
	}
}

// viewOrderInfo looks up one order under the visibility rule: owners see
// their own orders, staff see any.
func (a *App) viewOrderInfo(sess auth.Session) {
	orderID, ok := a.readUint("Please enter the rental order ID: ")
	if !ok {
		return
	}
	ctx, cancel := opCtx()
	defer cancel()
	det, err := a.visibility.VisibleOrder(ctx, sess.Login, orderID)
	if err != nil {
		a.report(err)
		return
	}
	a.printf("Order %d (owner %s)\n", det.RentalOrderID, det.Login)
	a.printf("  Placed: %s\n", det.OrderTimestamp.Format("2006-01-02 15:04:05"))
	a.printf("  Due: %s\n", det.DueDate.Format("2006-01-02"))
	a.printf("  Total: %s\n", utils.FormatCents(det.TotalPriceCents))
	a.printf("  Tracking ID: %d\n", det.TrackingID)
	for _, l := range det.Lines {
		a.printf("  %s x%d (%s)\n", l.GameName, l.UnitsOrdered, l.GameID)
	}
}

// viewTrackingInfo looks up one tracking record under the same rule.
func (a *App) viewTrackingInfo(sess auth.Session) {
	trackingID, ok := a.readUint("Please enter the tracking ID: ")
	if !ok {
		return
	}
	ctx, cancel := opCtx()
	defer cancel()
	t, err := a.visibility.VisibleTracking(ctx, sess.Login, trackingID)
	if err != nil {
		a.report(err)
		return
	}
	a.printf("Tracking %d (order %d)\n", t.TrackingID, t.RentalOrderID)
	a.printf("  Status: %s\n", t.Status)
	a.printf("  Current location: %s\n", t.CurrentLocation)
	a.printf("  Courier: %s\n", t.CourierName)
	a.printf("  Last update: %s\n", t.LastUpdateDate.Format("2006-01-02 15:04:05"))
	a.printf("  Comments: %s\n", t.AdditionalComments)
}
