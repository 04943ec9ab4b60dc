package pagecrawl

// DefaultPageURL is the page crawled when no URL is given.
const DefaultPageURL = "https://docs.oppwa.com/integrations/widget/api"

// Endpoint binds a fixed documentation URL to a named operation.
type Endpoint struct {
	Name        string
	Description string
	URL         string

	// Disabled endpoints are catalogued but never exposed.
	Disabled bool
}

// Endpoints returns the catalogue of documentation endpoints, including the
// disabled ones.
func Endpoints() []Endpoint {
	return []Endpoint{
		{
			Name:        "oppwa_copy_and_pay_integration_details",
			Description: "Returns the COPYandPAY integration page.",
			URL:         "https://docs.oppwa.com/integrations/widget",
		},
		{
			Name:        "oppwa_copy_and_pay_integration_api_reference",
			Description: "Returns the COPYandPAY API reference page.",
			URL:         "https://docs.oppwa.com/integrations/widget/api",
		},
		{
			Name:        "oppwa_pay_by_link_integration",
			Description: "Returns the details from the PAY By Link oppwa integration page.",
			URL:         "https://docs.oppwa.com/integrations/paybylink",
		},
		{
			Name:        "oppwa_pay_by_link_integration_api_reference",
			Description: "Returns the details from the PAY By Link oppwa API reference page.",
			URL:         "https://docs.oppwa.com/integrations/paybylink/api",
		},
		{
			Name:        "oppwa_transaction_reporting",
			Description: "Transaction reports allow to retrieve detailed transactional data from the oppwa platform.",
			URL:         "https://docs.oppwa.com/integrations/reporting/transaction",
		},
		{
			Name:        "prtpg_standard_checkout",
			Description: "Returns the details from the Standard Checkout integration page of the prtpg platform.",
			URL:         "https://docs.prtpg.com/integration/standard-checkout.php",
			Disabled:    true,
		},
		{
			Name:        "prtpg_standard_checkout_api_reference",
			Description: "Returns the details from the Standard Checkout API reference page of the prtpg platform.",
			URL:         "https://docs.prtpg.com/integration/standard-checkout-specifications.php",
			Disabled:    true,
		},
	}
}

// ActiveEndpoints returns the endpoints that are not disabled, in catalogue order.
func ActiveEndpoints() []Endpoint {
	var active []Endpoint
	for _, ep := range Endpoints() {
		if !ep.Disabled {
			active = append(active, ep)
		}
	}
	return active
}
