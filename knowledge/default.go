package knowledge

// DefaultEntries returns the built-in knowledge base used when no knowledge
// file exists yet. The content matches the seed data shipped with the
// original deployment.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Question: "Quels sont vos horaires d'ouverture ?",
			Answer:   "Nous sommes ouverts du lundi au vendredi de 9h à 18h.",
			Tags:     []string{"horaires", "contact", "heures"},
		},
		{
			Question: "Comment puis-je vous contacter ?",
			Answer:   "Vous pouvez nous contacter par email à contact@entreprise.com ou par téléphone au 01 23 45 67 89.",
			Tags:     []string{"contact", "email", "téléphone"},
		},
		{
			Question: "Quels services proposez-vous ?",
			Answer:   "Nous proposons du développement web, de l'intelligence artificielle et du consulting digital.",
			Tags:     []string{"services", "offre", "produits"},
		},
		{
			Question: "Acceptez-vous les cartes de crédit ?",
			Answer:   "Oui, nous acceptons Visa, MasterCard et American Express.",
			Tags:     []string{"paiement", "carte", "crédit"},
		},
		{
			Question: "Proposez-vous des formations ?",
			Answer:   "Oui, nous proposons des formations en ligne et en présentiel.",
			Tags:     []string{"formations", "cours", "apprentissage"},
		},
	}
}
