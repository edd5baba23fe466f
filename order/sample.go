package order

import "time"

// SampleRecords returns a small set of demo orders used by the examples and
// tests. Production deployments seed the ledger from their order system
// export via LoadLedger.
func SampleRecords() []Record {
	return []Record{
		{
			ID:           "CMD12345",
			Date:         time.Date(2024, time.March, 2, 10, 15, 0, 0, time.UTC),
			Status:       "En cours de livraison",
			Items:        []string{"Clavier mécanique AZERTY", "Tapis de souris XL"},
			Total:        129.90,
			Address:      "12 rue de la République, 69002 Lyon",
			Carrier:      "Colissimo",
			TrackingCode: "8R001234567FR",
			Milestones: []Milestone{
				{Timestamp: time.Date(2024, time.March, 2, 10, 20, 0, 0, time.UTC), Label: "Commande confirmée", Completed: true},
				{Timestamp: time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC), Label: "Préparation en entrepôt", Completed: true},
				{Timestamp: time.Date(2024, time.March, 4, 14, 30, 0, 0, time.UTC), Label: "Expédiée", Completed: true},
				{Timestamp: time.Date(2024, time.March, 6, 8, 0, 0, 0, time.UTC), Label: "Livraison prévue", Completed: false},
			},
		},
		{
			ID:           "CMD67890",
			Date:         time.Date(2024, time.February, 18, 16, 45, 0, 0, time.UTC),
			Status:       "Livrée",
			Items:        []string{"Casque audio sans fil"},
			Total:        89.00,
			Address:      "5 avenue des Ternes, 75017 Paris",
			Carrier:      "Chronopost",
			TrackingCode: "XY123456789FR",
			Milestones: []Milestone{
				{Timestamp: time.Date(2024, time.February, 18, 16, 50, 0, 0, time.UTC), Label: "Commande confirmée", Completed: true},
				{Timestamp: time.Date(2024, time.February, 19, 11, 0, 0, 0, time.UTC), Label: "Expédiée", Completed: true},
				{Timestamp: time.Date(2024, time.February, 20, 9, 30, 0, 0, time.UTC), Label: "Livrée", Completed: true},
			},
		},
	}
}
