package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"mechbook/internal/database"
	"mechbook/internal/domain"
	"mechbook/internal/repository"
)

// Dev/demo seed: an admin, the default category set, one approved shop with
// its services, and a sample customer account. Wipes existing rows first.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "mechbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM shops")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// ================== ADMIN ==================
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@mechbook.com",
		PasswordHash: string(adminHash),
		Name:         "Admin User",
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("admin:", err)
	}
	log.Println("Admin created: admin@mechbook.com / admin123")

	// ================== CATEGORIES ==================
	categories := []domain.Category{
		{Name: "Engine Repair", VehicleType: domain.FourWheeler, Description: "Engine diagnostics and repair services"},
		{Name: "Oil Change", VehicleType: domain.FourWheeler, Description: "Engine oil replacement and filter change"},
		{Name: "Brake Service", VehicleType: domain.FourWheeler, Description: "Brake pad replacement and brake system repair"},
		{Name: "AC Service", VehicleType: domain.FourWheeler, Description: "Air conditioning repair and gas refill"},
		{Name: "Bike Service", VehicleType: domain.TwoWheeler, Description: "General bike servicing"},
		{Name: "Bike Oil Change", VehicleType: domain.TwoWheeler, Description: "Engine oil change for bikes"},
		{Name: "Puncture Repair", VehicleType: domain.TwoWheeler, Description: "Tire puncture repair"},
		{Name: "Battery Service", VehicleType: domain.TwoWheeler, Description: "Battery check and replacement"},
	}
	for i := range categories {
		categories[i].IsActive = true
		if err := categoryRepo.Create(ctx, &categories[i]); err != nil {
			log.Fatal("category:", err)
		}
	}
	log.Printf("Created %d categories", len(categories))

	// ================== MECHANIC + SHOP ==================
	mechHash, _ := bcrypt.GenerateFromPassword([]byte("mechanic123"), bcrypt.DefaultCost)
	mech := &domain.User{
		Email:        "mechanic@example.com",
		PasswordHash: string(mechHash),
		Name:         "John Mechanic",
		Phone:        "+91 9876543210",
		Role:         domain.RoleMechanic,
	}
	shop := &domain.Shop{
		Name:         "Quick Fix Auto Service",
		Description:  "Professional auto repair and maintenance services. We specialize in both 2-wheelers and 4-wheelers with over 10 years of experience.",
		Address:      "123 Main Street, Near Bus Stand",
		City:         "Mumbai",
		State:        "Maharashtra",
		Pincode:      "400001",
		Phone:        "+91 9876543210",
		Email:        "quickfix@example.com",
		VehicleTypes: []domain.VehicleType{domain.TwoWheeler, domain.FourWheeler},
		Status:       domain.ShopApproved,
		OpenTime:     "09:00",
		CloseTime:    "19:00",
		WorkingDays:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		IsActive:     true,
	}
	if err := userRepo.CreateWithShop(ctx, mech, shop); err != nil {
		log.Fatal("mechanic:", err)
	}
	log.Printf("Created shop %q owned by %s / mechanic123", shop.Name, mech.Email)

	// ================== SERVICES ==================
	services := []domain.Service{
		{Name: "Full Car Service", Description: "Complete car inspection and service", Price: 2999, Duration: 120},
		{Name: "Oil Change", Description: "Engine oil and filter replacement", Price: 999, Duration: 30},
		{Name: "Brake Pad Replacement", Description: "Front and rear brake pad replacement", Price: 1499, Duration: 60},
		{Name: "AC Gas Refill", Description: "AC gas top-up and leak check", Price: 1299, Duration: 45},
		{Name: "Bike Full Service", Description: "Complete bike inspection and service", Price: 599, Duration: 60},
		{Name: "Bike Oil Change", Description: "Engine oil replacement", Price: 299, Duration: 20},
		{Name: "Puncture Repair", Description: "Tire puncture fixing", Price: 100, Duration: 15},
	}
	for i := range services {
		services[i].ShopID = shop.ID
		services[i].IsActive = true
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("service:", err)
		}
	}
	log.Printf("Created %d services", len(services))

	// ================== SAMPLE USER ==================
	userHash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	sample := &domain.User{
		Email:        "user@example.com",
		PasswordHash: string(userHash),
		Name:         "Test User",
		Phone:        "+91 9876543211",
		Role:         domain.RoleUser,
	}
	if err := userRepo.Create(ctx, sample); err != nil {
		log.Fatal("user:", err)
	}

	log.Println("--- Seed completed ---")
	log.Println("Admin:    admin@mechbook.com / admin123")
	log.Println("Mechanic: mechanic@example.com / mechanic123")
	log.Println("User:     user@example.com / user123")
}
