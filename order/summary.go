package order

import (
	"fmt"
	"strings"
)

// Summary renders the customer-facing order summary: id, current status,
// itemized products, total, delivery address, carrier, tracking code and the
// milestone list in original order with completed/pending marks.
func Summary(rec Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Commande %s (passée le %s)\n", rec.ID, rec.Date.Format("02/01/2006"))
	fmt.Fprintf(&b, "Statut : %s\n", rec.Status)

	b.WriteString("Articles :\n")
	for _, item := range rec.Items {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	fmt.Fprintf(&b, "Total : %.2f €\n", rec.Total)
	fmt.Fprintf(&b, "Adresse de livraison : %s\n", rec.Address)
	fmt.Fprintf(&b, "Transporteur : %s (suivi %s)\n", rec.Carrier, rec.TrackingCode)

	b.WriteString("Suivi de commande :\n")
	for _, ms := range rec.Milestones {
		mark := "en attente"
		if ms.Completed {
			mark = "terminé"
		}
		fmt.Fprintf(&b, "  [%s] %s : %s\n", mark, ms.Timestamp.Format("02/01/2006 15:04"), ms.Label)
	}
	return b.String()
}
