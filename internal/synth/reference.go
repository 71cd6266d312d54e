package synth

import "github.com/hubdispo/hubdispo/internal/models"

// Sampling pools. Every draw is with replacement, duplicates across records are expected.

var shipperCompanies = []string{
	"Brasserie Van Damme",
	"Chocolaterie Leonidas Export",
	"Antwerp Diamond Trading",
	"Ghent Textile Works",
	"Liège Steel Components",
	"Brugge Lace Atelier",
	"Namur Pharma Supplies",
	"Mechelen Furniture Group",
	"Leuven Biotech Labs",
	"Charleroi Glassworks",
	"Hasselt Fresh Foods",
	"Ostend Seafood Export",
	"Kortrijk Flax Industries",
	"Mons Precision Tools",
	"Aalst Packaging Solutions",
}

var belgianCities = []string{
	"Brussels",
	"Antwerp",
	"Ghent",
	"Liège",
	"Bruges",
	"Namur",
	"Leuven",
	"Mechelen",
	"Charleroi",
	"Hasselt",
	"Ostend",
	"Kortrijk",
}

type cityCountry struct {
	City    string
	Country string
}

var europeanCities = []cityCountry{
	{"Paris", "France"},
	{"Lyon", "France"},
	{"Amsterdam", "Netherlands"},
	{"Rotterdam", "Netherlands"},
	{"Berlin", "Germany"},
	{"Hamburg", "Germany"},
	{"Munich", "Germany"},
	{"Luxembourg", "Luxembourg"},
	{"Madrid", "Spain"},
	{"Barcelona", "Spain"},
	{"Milan", "Italy"},
	{"Rome", "Italy"},
	{"Vienna", "Austria"},
	{"Warsaw", "Poland"},
	{"Prague", "Czech Republic"},
	{"Copenhagen", "Denmark"},
	{"Stockholm", "Sweden"},
	{"Lisbon", "Portugal"},
	{"Dublin", "Ireland"},
	{"Zurich", "Switzerland"},
}

var destinationCompanyTemplates = []string{
	"%s Trading",
	"%s Import Co.",
	"%s Distribution",
	"%s Retail Group",
	"%s Logistics Partners",
}

var carriers = []string{
	"DHL Freight",
	"DB Schenker",
	"bpost International",
	"Kuehne+Nagel",
	"DSV Road",
	"GLS Belgium",
	"UPS Supply Chain",
	"H.Essers",
}

// Service tiers
const (
	ServiceEconomy  = "economy"
	ServiceStandard = "standard"
	ServiceExpress  = "express"
	ServicePremium  = "premium"
)

var serviceTiers = []string{ServiceEconomy, ServiceStandard, ServiceExpress, ServicePremium}

var shipmentStatuses = models.ShipmentStatuses
var priorities = models.Priorities
var customsStatuses = models.CustomsStatuses
var groupStatuses = models.GroupStatuses
var documentNames = models.CanonicalDocuments

// Carriers returns a copy of the carrier pool
func Carriers() []string {
	return append([]string(nil), carriers...)
}

// ServiceTiers returns a copy of the service tier pool
func ServiceTiers() []string {
	return append([]string(nil), serviceTiers...)
}
