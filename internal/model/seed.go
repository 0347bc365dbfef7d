package model

// SeedDataset returns the built-in records shown when no data file is given.
func SeedDataset() Dataset {
	return Dataset{
		Clients: []Client{
			{ID: 1, Name: "John Smith", Email: "john.smith@email.com", Phone: "(555) 123-4567", Address: "123 Main St, City, ST 12345", LastJob: "2024-01-15", TotalJobs: 12, TotalSpent: "$2,450", Status: ClientActive, Avatar: "JS"},
			{ID: 2, Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "(555) 234-5678", Address: "456 Oak Ave, City, ST 12345", LastJob: "2024-01-10", TotalJobs: 8, TotalSpent: "$1,890", Status: ClientActive, Avatar: "SJ"},
			{ID: 3, Name: "Mike Davis", Email: "mike.davis@email.com", Phone: "(555) 345-6789", Address: "789 Pine Rd, City, ST 12345", LastJob: "2024-01-08", TotalJobs: 15, TotalSpent: "$3,120", Status: ClientInactive, Avatar: "MD"},
			{ID: 4, Name: "Emily Brown", Email: "emily.brown@email.com", Phone: "(555) 456-7890", Address: "321 Elm St, City, ST 12345", LastJob: "2024-01-20", TotalJobs: 5, TotalSpent: "$945", Status: ClientActive, Avatar: "EB"},
			{ID: 5, Name: "Robert Wilson", Email: "robert.w@email.com", Phone: "(555) 567-8901", Address: "654 Cedar Dr, City, ST 12345", LastJob: "2024-01-05", TotalJobs: 20, TotalSpent: "$4,280", Status: ClientActive, Avatar: "RW"},
		},
		Jobs: []Job{
			{ID: 1, Title: "Plumbing Repair", Client: "John Smith", Address: "123 Main St", Date: "2024-01-15", Time: "09:00 AM", Status: JobInProgress, Priority: PriorityHigh, Estimate: "$450", Duration: "2 hours", Description: "Fix leaking kitchen sink and replace faucet"},
			{ID: 2, Title: "Electrical Installation", Client: "Sarah Johnson", Address: "456 Oak Ave", Date: "2024-01-16", Time: "11:30 AM", Status: JobScheduled, Priority: PriorityMedium, Estimate: "$780", Duration: "3 hours", Description: "Install new electrical outlet in garage"},
			{ID: 3, Title: "HVAC Maintenance", Client: "Mike Davis", Address: "789 Pine Rd", Date: "2024-01-12", Time: "02:00 PM", Status: JobCompleted, Priority: PriorityLow, Estimate: "$320", Duration: "1.5 hours", Description: "Annual HVAC system inspection and filter replacement"},
			{ID: 4, Title: "General Repair", Client: "Emily Brown", Address: "321 Elm St", Date: "2024-01-18", Time: "04:30 PM", Status: JobScheduled, Priority: PriorityMedium, Estimate: "$235", Duration: "1 hour", Description: "Fix squeaky door hinges and patch wall holes"},
			{ID: 5, Title: "Electrical Repair", Client: "Robert Wilson", Address: "654 Cedar Dr", Date: "2024-01-10", Time: "10:00 AM", Status: JobCompleted, Priority: PriorityHigh, Estimate: "$890", Duration: "4 hours", Description: "Repair electrical panel and replace circuit breakers"},
		},
		Quotes: []Quote{
			{ID: 1, Number: "Q-2024-001", Client: "John Smith", Service: "Plumbing Repair", Amount: "$450.00", Date: "2024-01-15", ValidUntil: "2024-02-15", Status: QuotePending, Description: "Kitchen sink repair and faucet replacement"},
			{ID: 2, Number: "Q-2024-002", Client: "Sarah Johnson", Service: "Electrical Installation", Amount: "$780.00", Date: "2024-01-14", ValidUntil: "2024-02-14", Status: QuoteAccepted, Description: "Garage electrical outlet installation"},
			{ID: 3, Number: "Q-2024-003", Client: "Mike Davis", Service: "HVAC Maintenance", Amount: "$320.00", Date: "2024-01-13", ValidUntil: "2024-02-13", Status: QuoteRejected, Description: "Annual HVAC system inspection"},
			{ID: 4, Number: "Q-2024-004", Client: "Emily Brown", Service: "General Repair", Amount: "$235.00", Date: "2024-01-12", ValidUntil: "2024-02-12", Status: QuoteSent, Description: "Door repair and wall patching"},
			{ID: 5, Number: "Q-2024-005", Client: "Robert Wilson", Service: "Electrical Repair", Amount: "$890.00", Date: "2024-01-11", ValidUntil: "2024-02-11", Status: QuoteDraft, Description: "Electrical panel upgrade"},
		},
		Services: []Service{
			{ID: 1, Name: "Plumbing Repair", Category: "Plumbing", Description: "Fix leaks, repair pipes, and general plumbing maintenance", BasePrice: "$75/hour", AvgDuration: "2 hours", Popularity: 95, TotalJobs: 156, Revenue: "$11,700", Rating: 4.8, Tags: []string{"Emergency", "Popular"}},
			{ID: 2, Name: "Electrical Installation", Category: "Electrical", Description: "Install outlets, fixtures, and electrical components", BasePrice: "$90/hour", AvgDuration: "3 hours", Popularity: 87, TotalJobs: 98, Revenue: "$26,460", Rating: 4.9, Tags: []string{"Licensed", "High Value"}},
			{ID: 3, Name: "HVAC Maintenance", Category: "HVAC", Description: "Heating and cooling system inspection and maintenance", BasePrice: "$120/hour", AvgDuration: "1.5 hours", Popularity: 78, TotalJobs: 67, Revenue: "$12,060", Rating: 4.7, Tags: []string{"Seasonal", "Maintenance"}},
			{ID: 4, Name: "General Repair", Category: "General", Description: "Various handyman services and general repairs", BasePrice: "$60/hour", AvgDuration: "1 hour", Popularity: 92, TotalJobs: 234, Revenue: "$14,040", Rating: 4.6, Tags: []string{"Versatile", "Quick"}},
			{ID: 5, Name: "Appliance Repair", Category: "Appliances", Description: "Repair and service home appliances", BasePrice: "$85/hour", AvgDuration: "2.5 hours", Popularity: 73, TotalJobs: 89, Revenue: "$18,955", Rating: 4.5, Tags: []string{"Specialized", "Warranty"}},
		},
		Locations: []Location{
			{ID: 1, Name: "John Smith", Address: "123 Main St", Status: LocationActive, Time: "09:00 AM", Phone: "(555) 123-4567", Service: "Plumbing Repair", Latitude: 40.7128, Longitude: -74.0060},
			{ID: 2, Name: "Sarah Johnson", Address: "456 Oak Ave", Status: LocationCompleted, Time: "11:30 AM", Phone: "(555) 234-5678", Service: "Electrical Installation", Latitude: 40.7306, Longitude: -73.9866},
			{ID: 3, Name: "Mike Davis", Address: "789 Pine Rd", Status: LocationScheduled, Time: "02:00 PM", Phone: "(555) 345-6789", Service: "HVAC Maintenance", Latitude: 40.6782, Longitude: -73.9442},
			{ID: 4, Name: "Emily Brown", Address: "321 Elm St", Status: LocationActive, Time: "04:30 PM", Phone: "(555) 456-7890", Service: "General Repair", Latitude: 40.7484, Longitude: -73.9857},
			{ID: 5, Name: "Robert Wilson", Address: "654 Cedar Dr", Status: LocationScheduled, Time: "10:00 AM", Phone: "(555) 567-8901", Service: "Electrical Repair", Latitude: 40.6892, Longitude: -74.0445},
		},
	}
}
