package devserver

import "spana-admin/models"

// seed loads fixture data. Statuses are intentionally the raw free-text
// values the production API sends, so the dashboard's display normalization
// has something to chew on.
func (s *Server) seed() {
	s.users = []models.User{
		{ID: "u-1001", Name: "Naledi Khumalo", Email: "naledi@example.com", Type: models.UserTypeClient, Status: "active", Joined: "2025-02-14"},
		{ID: "u-1002", Name: "Sipho Dlamini", Email: "sipho@example.com", Type: models.UserTypeProvider, Status: "ACTIVE", Joined: "2025-03-02"},
		{ID: "u-1003", Name: "Amara Obi", Email: "amara@example.com", Type: models.UserTypeClient, Status: "suspended", Joined: "2025-04-21"},
		{ID: "u-1004", Name: "Thandi Mokoena", Email: "thandi@example.com", Type: models.UserTypeProvider},
	}

	s.bookings = []models.Booking{
		{
			ID: "b-2001", UserID: "u-1001", ServiceID: "s-3001",
			ClientName: "Naledi Khumalo", ServiceName: "Deep Cleaning",
			Status: "accept", BookingDate: "2025-08-10", Price: 450,
			Payment: &models.PaymentField{Payment: &models.Payment{
				ID: "p-1", Amount: 450, Currency: "ZAR", Status: "paid",
			}},
		},
		{
			ID: "b-2002", UserID: "u-1003", ServiceID: "s-3002",
			ClientName: "Amara Obi", ServiceName: "Garden Care",
			Status: "pending", BookingDate: "2025-08-18", Price: 300,
			Payment: &models.PaymentField{Ref: "awaiting"},
		},
		{
			ID: "b-2003", UserID: "u-1001", ServiceID: "s-3002",
			ClientName: "Naledi Khumalo", ServiceName: "Garden Care",
			Status: "done", BookingDate: "2025-07-30", Price: 300,
			Payment: &models.PaymentField{Payment: &models.Payment{
				ID: "p-3", Amount: 300, Currency: "ZAR", Status: "refunded",
			}},
		},
	}

	s.services = []models.Service{
		{ID: "s-3001", Title: "Deep Cleaning", Description: "Full home deep clean", Price: 450, Status: "active"},
		{ID: "s-3002", Title: "Garden Care", Description: "Lawn and garden maintenance", Price: 300, Status: "active"},
		{ID: "s-3003", Title: "Chauffeur", Description: "Hourly private driver", Price: 250, Status: "inactive"},
	}
}
