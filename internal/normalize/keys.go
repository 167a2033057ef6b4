// Package normalize maps loosely-typed extraction output into canonical
// document records. Every normalizer is a total function: whatever shape the
// field bag takes, the caller always gets back a minimally valid record.
package normalize

// Key variant tables. Extraction output names the same concept in several
// spellings (language, accents, singular/plural), so each logical field
// carries an ordered list of accepted key names. Order is priority: the
// resolver takes the first non-empty match. These lists are the principal
// domain knowledge in this package; keeping them as data rather than inlined
// branching keeps them auditable and testable on their own.

// CV field keys.
var (
	nameKeys     = []string{"nom", "name"}
	emailKeys    = []string{"email", "e-mail", "courriel"}
	phoneKeys    = []string{"telephone", "téléphone", "phone"}
	addressKeys  = []string{"adresse", "address"}
	positionKeys = []string{"poste", "position"}

	experienceKeys = []string{"experiences", "experience", "experiences_professionnelles", "expériences", "expérience"}
	educationKeys  = []string{"formations", "formation", "formations_academiques", "education", "éducation"}
	skillKeys      = []string{"competences", "competence", "skills", "compétences", "compétence"}
)

// Invoice field keys.
var (
	invoiceNumberKeys = []string{"numero_facture", "numéro", "numero", "invoice_number"}
	invoiceDateKeys   = []string{"date"}
	clientNameKeys    = []string{"client_nom", "client", "client_name"}
	clientAddressKeys = []string{"client_adresse", "adresse", "client_address"}
	supplierKeys      = []string{"fournisseur", "supplier", "supplier_name"}
	supplierEmailKeys = []string{"email_fournisseur", "supplier_email"}
	issueDateKeys     = []string{"date_emission", "date_émission", "issue_date"}
	dueDateKeys       = []string{"date_echeance", "date_échéance", "due_date"}
	lineItemKeys      = []string{"services", "produits", "items", "prestations"}
	totalAmountKeys   = []string{"montant_total", "total_amount"}
	taxRateKeys       = []string{"tva", "tax_rate"}
	totalWithTaxKeys  = []string{"total_ttc", "total_with_tax"}
	paymentTermsKeys  = []string{"conditions", "conditions_paiement", "payment_terms"}
	legalNoticesKeys  = []string{"mentions_legales", "mentions_légales", "legal_notices"}
	remarksKeys       = []string{"remarques", "remarks"}
)

// Report field keys.
var (
	titleKeys       = []string{"titre", "title"}
	authorKeys      = []string{"auteur", "author"}
	reportDateKeys  = []string{"date"}
	summaryKeys     = []string{"resume", "résumé", "summary"}
	sectionListKeys = []string{"sections"}
	chapterListKeys = []string{"chapitres", "chapters"}
	contentKeys     = []string{"contenu", "content"}
	conclusionKeys  = []string{"conclusions", "conclusion"}
)

// Sub-record field keys, used when a list element is a structured object
// rather than a plain string.
var (
	roleKeys        = []string{"poste", "role", "rôle"}
	companyKeys     = []string{"entreprise", "company", "société", "societe"}
	periodKeys      = []string{"periode", "période", "period", "dates"}
	degreeKeys      = []string{"diplome", "diplôme", "degree"}
	locationKeys    = []string{"lieu"}
	institutionKeys = []string{"etablissement", "établissement", "institution", "ecole", "école"}
	yearKeys        = []string{"annee", "année", "year"}

	descriptionKeys = []string{"description", "designation", "désignation", "nom", "name", "service", "produit"}
	quantityKeys    = []string{"quantite", "quantité", "quantity", "qty"}
	unitPriceKeys   = []string{"prix_unitaire", "unit_price", "prix", "price"}

	sectionTitleKeys   = []string{"titre", "title"}
	sectionContentKeys = []string{"contenu", "content", "texte", "text"}
)
