// Package fixtures bundles a small static shop directory used when the
// server runs with DEMO_MODE=true, so the public browsing endpoints work
// without a seeded database. Mutating endpoints are not affected.
package fixtures

import "mechbook/internal/domain"

func strs(v ...string) []string { return v }

// DemoShops returns fresh copies of the bundled directory so callers can
// filter and trim service lists without touching shared state.
func DemoShops() []domain.Shop {
	return []domain.Shop{
		{
			ID:           1,
			Name:         "Quick Fix Auto Service",
			Description:  "Professional auto repair and maintenance services. We specialize in both 2-wheelers and 4-wheelers with over 10 years of experience.",
			Address:      "123 Main Street, Near Bus Stand",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400001",
			Phone:        "+91 9876543210",
			Email:        "quickfix@example.com",
			VehicleTypes: []domain.VehicleType{domain.TwoWheeler, domain.FourWheeler},
			OpenTime:     "09:00",
			CloseTime:    "19:00",
			WorkingDays:  strs("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"),
			Status:       domain.ShopApproved,
			IsActive:     true,
			Services: []domain.Service{
				{ID: 1, ShopID: 1, Name: "Full Car Service", Price: 2999, Duration: 180, IsActive: true},
				{ID: 2, ShopID: 1, Name: "Oil Change", Price: 999, Duration: 45, IsActive: true},
				{ID: 3, ShopID: 1, Name: "Brake Pad Replacement", Price: 1499, Duration: 90, IsActive: true},
			},
		},
		{
			ID:           2,
			Name:         "SpeedMech Garage",
			Description:  "Expert car repair services with state-of-the-art diagnostic equipment. Specializing in luxury and premium vehicles.",
			Address:      "456 Park Avenue, Andheri West",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400058",
			Phone:        "+91 9876543211",
			Email:        "speedmech@example.com",
			VehicleTypes: []domain.VehicleType{domain.FourWheeler},
			OpenTime:     "08:00",
			CloseTime:    "20:00",
			WorkingDays:  strs("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"),
			Status:       domain.ShopApproved,
			IsActive:     true,
			Services: []domain.Service{
				{ID: 4, ShopID: 2, Name: "Engine Diagnostics", Price: 1500, Duration: 60, IsActive: true},
				{ID: 5, ShopID: 2, Name: "AC Gas Refill", Price: 1299, Duration: 45, IsActive: true},
				{ID: 6, ShopID: 2, Name: "Wheel Alignment", Price: 899, Duration: 60, IsActive: true},
			},
		},
		{
			ID:           3,
			Name:         "Two Wheeler Hub",
			Description:  "Your one-stop solution for all bike and scooter repairs. Genuine spare parts and experienced mechanics.",
			Address:      "789 Station Road, Dadar",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400014",
			Phone:        "+91 9876543212",
			Email:        "twowheeler@example.com",
			VehicleTypes: []domain.VehicleType{domain.TwoWheeler},
			OpenTime:     "09:30",
			CloseTime:    "18:30",
			WorkingDays:  strs("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"),
			Status:       domain.ShopApproved,
			IsActive:     true,
			Services: []domain.Service{
				{ID: 7, ShopID: 3, Name: "Bike Full Service", Price: 599, Duration: 90, IsActive: true},
				{ID: 8, ShopID: 3, Name: "Puncture Repair", Price: 100, Duration: 15, IsActive: true},
				{ID: 9, ShopID: 3, Name: "Chain Cleaning & Lube", Price: 250, Duration: 30, IsActive: true},
			},
		},
		{
			ID:           4,
			Name:         "Royal Auto Care",
			Description:  "Premium car care services including detailing, ceramic coating, and PPF installation. We treat your car like royalty.",
			Address:      "321 Link Road, Bandra",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400050",
			Phone:        "+91 9876543213",
			Email:        "royalauto@example.com",
			VehicleTypes: []domain.VehicleType{domain.FourWheeler},
			OpenTime:     "10:00",
			CloseTime:    "19:00",
			WorkingDays:  strs("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"),
			Status:       domain.ShopApproved,
			IsActive:     true,
			Services: []domain.Service{
				{ID: 10, ShopID: 4, Name: "Car Detailing", Price: 4999, Duration: 240, IsActive: true},
				{ID: 11, ShopID: 4, Name: "Ceramic Coating", Price: 15000, Duration: 480, IsActive: true},
				{ID: 12, ShopID: 4, Name: "Interior Cleaning", Price: 1999, Duration: 120, IsActive: true},
			},
		},
		{
			ID:           5,
			Name:         "City Bike Works",
			Description:  "Specialized in sports bikes and superbikes. Performance upgrades, custom modifications, and regular servicing.",
			Address:      "567 Highway Road, Powai",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400076",
			Phone:        "+91 9876543214",
			Email:        "citybike@example.com",
			VehicleTypes: []domain.VehicleType{domain.TwoWheeler},
			OpenTime:     "10:00",
			CloseTime:    "20:00",
			WorkingDays:  strs("Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"),
			Status:       domain.ShopApproved,
			IsActive:     true,
			Services: []domain.Service{
				{ID: 13, ShopID: 5, Name: "Performance Tuning", Price: 5999, Duration: 180, IsActive: true},
				{ID: 14, ShopID: 5, Name: "Exhaust Upgrade", Price: 8999, Duration: 120, IsActive: true},
				{ID: 15, ShopID: 5, Name: "Suspension Setup", Price: 3499, Duration: 90, IsActive: true},
			},
		},
		{
			ID:           6,
			Name:         "Sharma Auto Electricals",
			Description:  "Specialists in auto electrical repairs - batteries, alternators, starters, and complete wiring solutions.",
			Address:      "890 Industrial Area, Thane",
			City:         "Thane",
			State:        "Maharashtra",
			Pincode:      "400601",
			Phone:        "+91 9876543215",
			Email:        "sharmaelec@example.com",
			VehicleTypes: []domain.VehicleType{domain.TwoWheeler, domain.FourWheeler},
			OpenTime:     "09:00",
			CloseTime:    "18:00",
			WorkingDays:  strs("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"),
			Status:       domain.ShopApproved,
			IsActive:     true,
			Services: []domain.Service{
				{ID: 16, ShopID: 6, Name: "Battery Replacement", Price: 500, Duration: 30, IsActive: true},
				{ID: 17, ShopID: 6, Name: "Alternator Repair", Price: 2500, Duration: 120, IsActive: true},
				{ID: 18, ShopID: 6, Name: "Starter Motor Repair", Price: 1800, Duration: 90, IsActive: true},
			},
		},
	}
}
