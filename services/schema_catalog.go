package services

import "regexp"

// Dropdown option sets shared across template types.
var (
	DeviceTypeOptions = []string{"Phone", "Laptop", "Tablet", "Watch", "Camera", "Headphones", "Console", "Other"}
	ConditionOptions  = []string{"New", "Like New", "Good", "Fair", "For Parts"}
	CategoryOptions   = []string{"Phones", "Laptops", "Tablets", "Wearables", "Audio", "Cameras", "Gaming", "Accessories"}
	CurrencyOptions   = []string{"USD", "EUR", "GBP", "ZAR", "KES", "NGN"}
	YesNoOptions      = []string{"Yes", "No"}
	PolicyTypeOptions = []string{"Theft", "Loss", "Accidental Damage", "Comprehensive"}
)

var (
	serialNumberPattern = regexp.MustCompile(`^[A-Za-z0-9-]{4,64}$`)
	policeReportPattern = regexp.MustCompile(`^[A-Z0-9/-]{4,32}$`)
	policyNumberPattern = regexp.MustCompile(`^[A-Z]{2,4}-[0-9]{6,10}$`)
)

// NewSchemaRegistry builds the registry with the built-in GadgetGuard
// template catalog. Field labels normalize back to their keys via
// NormalizeKey, which is what ties generated documents to parsed records.
func NewSchemaRegistry() *SchemaRegistry {
	return NewSchemaRegistryWith(
		map[TemplateType][]TemplateSection{
			TemplateDevices:             deviceSections(),
			TemplateMarketplaceListings: listingSections(),
			TemplateLostReports:         lostReportSections(),
			TemplateFoundReports:        foundReportSections(),
			TemplateInsurancePolicies:   insurancePolicySections(),
		},
		map[TemplateType][]string{
			TemplateDevices:           {"serial_number", "imei"},
			TemplateInsurancePolicies: {"policy_number"},
		},
		map[TemplateType]string{
			TemplateDevices:             "assets",
			TemplateMarketplaceListings: "marketplace",
			TemplateLostReports:         "reports",
			TemplateFoundReports:        "reports",
			TemplateInsurancePolicies:   "insurance",
		},
	)
}

func deviceSections() []TemplateSection {
	return []TemplateSection{
		{
			Name: "Device Information",
			Fields: []TemplateField{
				{Key: "serial_number", Label: "Serial Number", Type: FieldText, Required: true, Pattern: serialNumberPattern, Example: "ABC123", Description: "Manufacturer serial number"},
				{Key: "imei", Label: "IMEI", Type: FieldText, Example: "356938035643809", Description: "15-digit IMEI for cellular devices"},
				{Key: "device_type", Label: "Device Type", Type: FieldDropdown, Required: true, Options: DeviceTypeOptions, Example: "Phone"},
				{Key: "brand", Label: "Brand", Type: FieldText, Required: true, MaxLength: 50, Example: "Apple"},
				{Key: "model", Label: "Model", Type: FieldText, Required: true, MaxLength: 80, Example: "A2483"},
				{Key: "color", Label: "Color", Type: FieldText, MaxLength: 30, Example: "Midnight Black"},
			},
		},
		{
			Name: "Purchase Details",
			Fields: []TemplateField{
				{Key: "purchase_date", Label: "Purchase Date", Type: FieldDate, Required: true, Example: "2024-01-15", Description: "Date of purchase, not in the future"},
				{Key: "purchase_price", Label: "Purchase Price", Type: FieldNumber, Required: true, Example: "1299.99"},
				{Key: "retailer", Label: "Retailer", Type: FieldText, MaxLength: 100, Example: "TechWorld Nairobi"},
				{Key: "warranty_expiry", Label: "Warranty Expiry", Type: FieldDate, Example: "2026-01-15", Description: "Warranty end date, may be in the future"},
			},
		},
		{
			Name: "Additional Details",
			Fields: []TemplateField{
				{Key: "condition", Label: "Condition", Type: FieldDropdown, Options: ConditionOptions, Example: "Good"},
				{Key: "notes", Label: "Notes", Type: FieldText, MaxLength: 500, Example: "Small scratch on the back cover"},
			},
		},
	}
}

func listingSections() []TemplateSection {
	return []TemplateSection{
		{
			Name: "Listing Details",
			Fields: []TemplateField{
				{Key: "title", Label: "Title", Type: FieldText, Required: true, MaxLength: 80, Example: "iPhone 13 Pro 256GB"},
				{Key: "description", Label: "Description", Type: FieldText, MaxLength: 1000, Example: "Lightly used, original box and charger included"},
				{Key: "category", Label: "Category", Type: FieldDropdown, Required: true, Options: CategoryOptions, Example: "Phones"},
				{Key: "condition", Label: "Condition", Type: FieldDropdown, Required: true, Options: ConditionOptions, Example: "Like New"},
			},
		},
		{
			Name: "Pricing",
			Fields: []TemplateField{
				{Key: "price", Label: "Price", Type: FieldNumber, Required: true, Example: "749.00"},
				{Key: "currency", Label: "Currency", Type: FieldDropdown, Options: CurrencyOptions, Example: "USD"},
				{Key: "negotiable", Label: "Negotiable", Type: FieldDropdown, Options: YesNoOptions, Example: "Yes"},
			},
		},
		{
			Name: "Seller Contact",
			Fields: []TemplateField{
				{Key: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true, Example: "seller@example.com"},
				{Key: "contact_phone", Label: "Contact Phone", Type: FieldPhone, Example: "+14155552671"},
				{Key: "website", Label: "Website", Type: FieldURL, Example: "https://example.com/store"},
			},
		},
	}
}

func lostReportSections() []TemplateSection {
	return []TemplateSection{
		{
			Name: "Device Details",
			Fields: []TemplateField{
				{Key: "serial_number", Label: "Serial Number", Type: FieldText, Required: true, Pattern: serialNumberPattern, Example: "ABC123"},
				{Key: "imei", Label: "IMEI", Type: FieldText, Example: "356938035643809"},
				{Key: "device_type", Label: "Device Type", Type: FieldDropdown, Required: true, Options: DeviceTypeOptions, Example: "Phone"},
				{Key: "brand", Label: "Brand", Type: FieldText, MaxLength: 50, Example: "Samsung"},
				{Key: "model", Label: "Model", Type: FieldText, MaxLength: 80, Example: "Galaxy S22"},
			},
		},
		{
			Name: "Incident Details",
			Fields: []TemplateField{
				{Key: "incident_date", Label: "Incident Date", Type: FieldDate, Required: true, Example: "2025-06-15", Description: "When the device was lost or stolen"},
				{Key: "incident_location", Label: "Incident Location", Type: FieldText, Required: true, MaxLength: 120, Example: "Central Station, Cape Town"},
				{Key: "incident_description", Label: "Incident Description", Type: FieldText, MaxLength: 1000, Example: "Taken from backpack on the evening train"},
				{Key: "police_report_number", Label: "Police Report Number", Type: FieldText, Pattern: policeReportPattern, Example: "FIR-2025-00123"},
			},
		},
		{
			Name: "Contact & Recovery",
			Fields: []TemplateField{
				{Key: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true, Example: "owner@example.com"},
				{Key: "contact_phone", Label: "Contact Phone", Type: FieldPhone, Example: "+27821234567"},
				{Key: "reward_amount", Label: "Reward Amount", Type: FieldNumber, Example: "150"},
			},
		},
	}
}

func foundReportSections() []TemplateSection {
	return []TemplateSection{
		{
			Name: "Device Details",
			Fields: []TemplateField{
				{Key: "device_type", Label: "Device Type", Type: FieldDropdown, Required: true, Options: DeviceTypeOptions, Example: "Phone"},
				{Key: "brand", Label: "Brand", Type: FieldText, MaxLength: 50, Example: "Apple"},
				{Key: "model", Label: "Model", Type: FieldText, MaxLength: 80, Example: "iPhone 12"},
				{Key: "serial_number", Label: "Serial Number", Type: FieldText, Pattern: serialNumberPattern, Example: "XYZ789"},
				{Key: "imei", Label: "IMEI", Type: FieldText, Example: "490154203237518"},
			},
		},
		{
			Name: "Discovery Details",
			Fields: []TemplateField{
				{Key: "found_date", Label: "Found Date", Type: FieldDate, Required: true, Example: "2025-07-20"},
				{Key: "found_location", Label: "Found Location", Type: FieldText, Required: true, MaxLength: 120, Example: "Bus stop on Main Road, Nairobi"},
				{Key: "found_description", Label: "Found Description", Type: FieldText, MaxLength: 1000, Example: "Found under a bench, screen intact"},
				{Key: "handed_to_police", Label: "Handed To Police", Type: FieldDropdown, Options: YesNoOptions, Example: "No"},
			},
		},
		{
			Name: "Finder Contact",
			Fields: []TemplateField{
				{Key: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true, Example: "finder@example.com"},
				{Key: "contact_phone", Label: "Contact Phone", Type: FieldPhone, Example: "+254712345678"},
			},
		},
	}
}

func insurancePolicySections() []TemplateSection {
	return []TemplateSection{
		{
			Name: "Policy Details",
			Fields: []TemplateField{
				{Key: "policy_number", Label: "Policy Number", Type: FieldText, Required: true, Pattern: policyNumberPattern, Example: "GG-123456", Description: "Format: 2-4 letters, dash, 6-10 digits"},
				{Key: "provider", Label: "Provider", Type: FieldText, Required: true, MaxLength: 100, Example: "SafeCover Insurance"},
				{Key: "policy_type", Label: "Policy Type", Type: FieldDropdown, Options: PolicyTypeOptions, Example: "Comprehensive"},
				{Key: "start_date", Label: "Start Date", Type: FieldDate, Required: true, Example: "2025-01-01"},
				{Key: "expiry_date", Label: "Expiry Date", Type: FieldDate, Required: true, Example: "2026-12-31"},
				{Key: "premium", Label: "Premium", Type: FieldNumber, Required: true, Example: "499"},
				{Key: "coverage_amount", Label: "Coverage Amount", Type: FieldNumber, Example: "2500"},
			},
		},
		{
			Name: "Covered Device",
			Fields: []TemplateField{
				{Key: "serial_number", Label: "Serial Number", Type: FieldText, Required: true, Pattern: serialNumberPattern, Example: "ABC123"},
				{Key: "device_type", Label: "Device Type", Type: FieldDropdown, Options: DeviceTypeOptions, Example: "Laptop"},
				{Key: "purchase_price", Label: "Purchase Price", Type: FieldNumber, Example: "1999.00"},
			},
		},
		{
			Name: "Policy Holder",
			Fields: []TemplateField{
				{Key: "holder_name", Label: "Holder Name", Type: FieldText, MaxLength: 100, Example: "Jane Mwangi"},
				{Key: "holder_email", Label: "Holder Email", Type: FieldEmail, Example: "jane@example.com"},
			},
		},
	}
}
