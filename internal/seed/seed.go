package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"prizedraw/internal/domain"
)

type competitionSeed struct {
	Title        string
	Description  string
	Image        string
	Category     string
	TicketPrice  string
	TotalTickets int
	SoldTickets  int
	EndsInDays   int
	Featured     bool
}

// Apply inserts sample competitions for manual testing. A non-empty
// competitions table is left untouched so reseeding never duplicates or
// resets live sold counts.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM competitions`).Scan(&count); err != nil {
		return fmt.Errorf("count competitions: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, c := range competitions {
		price, err := domain.ParseAmount(c.TicketPrice)
		if err != nil {
			return fmt.Errorf("seed %q: %w", c.Title, err)
		}
		const q = `
INSERT INTO competitions (title, description, image, category, ticket_price_pence, total_tickets, sold_tickets, end_date, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
		endDate := now.AddDate(0, 0, c.EndsInDays)
		if _, err := pool.Exec(ctx, q, c.Title, c.Description, c.Image, c.Category, price, c.TotalTickets, c.SoldTickets, endDate, c.Featured); err != nil {
			return fmt.Errorf("insert %q: %w", c.Title, err)
		}
	}
	return nil
}

var competitions = []competitionSeed{
	{
		Title:        "Win a PlayStation 5",
		Description:  "Win the latest PlayStation 5 console with an extra controller and three games of your choice.",
		Image:        "https://images.unsplash.com/photo-1607853202273-797f1c22a38e?auto=format&fit=crop&w=1000&q=80",
		Category:     "Electronics",
		TicketPrice:  "1.00",
		TotalTickets: 5000,
		SoldTickets:  2453,
		EndsInDays:   15,
		Featured:     true,
	},
	{
		Title:        "Luxury Weekend in Paris",
		Description:  "A luxurious weekend for two in Paris: flights, 5-star hotel and a private tour of the city's landmarks.",
		Image:        "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?auto=format&fit=crop&w=1000&q=80",
		Category:     "Travel",
		TicketPrice:  "2.50",
		TotalTickets: 2000,
		SoldTickets:  876,
		EndsInDays:   30,
		Featured:     true,
	},
	{
		Title:        "Apple MacBook Pro 16",
		Description:  "The latest MacBook Pro with M2 Pro chip, 16GB RAM and 1TB SSD.",
		Image:        "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?auto=format&fit=crop&w=1000&q=80",
		Category:     "Electronics",
		TicketPrice:  "5.00",
		TotalTickets: 1000,
		SoldTickets:  621,
		EndsInDays:   10,
	},
	{
		Title:        "Tesla Model 3",
		Description:  "A brand new Tesla Model 3 Long Range in Midnight Silver with over 350 miles of range.",
		Image:        "https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&w=1000&q=80",
		Category:     "Automotive",
		TicketPrice:  "25.00",
		TotalTickets: 10000,
		SoldTickets:  3542,
		EndsInDays:   60,
		Featured:     true,
	},
	{
		Title:        "£10,000 Cash Prize",
		Description:  "£10,000 cash delivered directly to your bank account.",
		Image:        "https://images.unsplash.com/photo-1565300667498-2843c56b9fb0?auto=format&fit=crop&w=1000&q=80",
		Category:     "Cash",
		TicketPrice:  "5.00",
		TotalTickets: 8000,
		SoldTickets:  6235,
		EndsInDays:   5,
		Featured:     true,
	},
	{
		Title:        "Gaming PC Bundle",
		Description:  "High-end gaming PC bundle with RTX 4080, 32GB RAM, 2TB SSD, monitor, keyboard and headset.",
		Image:        "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?auto=format&fit=crop&w=1000&q=80",
		Category:     "Electronics",
		TicketPrice:  "2.00",
		TotalTickets: 4000,
		SoldTickets:  1876,
		EndsInDays:   20,
	},
	{
		Title:        "Luxury Watch Collection",
		Description:  "A collection of three luxury watches: Rolex Submariner, Omega Seamaster and Tag Heuer Monaco.",
		Image:        "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&w=1000&q=80",
		Category:     "Luxury",
		TicketPrice:  "10.00",
		TotalTickets: 2500,
		SoldTickets:  987,
		EndsInDays:   25,
		Featured:     true,
	},
	{
		Title:        "World Cup Final Tickets",
		Description:  "A pair of tickets to the next FIFA World Cup Final, including flights and 5-star hotel accommodation.",
		Image:        "https://images.unsplash.com/photo-1518091043644-c1d4457512c6?auto=format&fit=crop&w=1000&q=80",
		Category:     "Sports",
		TicketPrice:  "5.00",
		TotalTickets: 5000,
		SoldTickets:  3254,
		EndsInDays:   45,
	},
}
