package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email    string
	password string
}

type seedRestaurant struct {
	name    string
	address string
	foods   []seedFood
}

type seedFood struct {
	name  string
	price float64
}

var users = []seedUser{
	{email: "imhayatunnabi@gmail.com", password: "password123"},
	{email: "imhayatunnabi.pen@gmail.com", password: "password123"},
	{email: "admin@gmail.com", password: "admin123"},
}

var restaurants = []seedRestaurant{
	{name: "Star Kabab", address: "23/B Gulshan Avenue, Dhaka", foods: []seedFood{
		{name: "Chicken Kabab", price: 250}, {name: "Mutton Leg Roast", price: 480},
	}},
	{name: "Sultan's Dine", address: "12 Banani Road, Dhaka", foods: []seedFood{
		{name: "Kacchi Biriyani", price: 320}, {name: "Borhani", price: 60},
	}},
	{name: "Kacchi Bhai", address: "45 Dhanmondi Lake Road, Dhaka", foods: []seedFood{
		{name: "Basmati Kacchi", price: 340}, {name: "Jali Kabab", price: 90},
	}},
	{name: "Pizza Inn", address: "78/A Uttara Sector 4, Dhaka", foods: []seedFood{
		{name: "Margherita", price: 550}, {name: "BBQ Chicken Pizza", price: 750},
	}},
	{name: "Burger King", address: "56 Bashundhara Block B, Dhaka", foods: []seedFood{
		{name: "Whopper", price: 450}, {name: "Cheese Fries", price: 180},
	}},
	{name: "KFC Gulshan", address: "34 Gulshan Circle 2, Dhaka", foods: []seedFood{
		{name: "Zinger Burger", price: 280}, {name: "Bucket Chicken", price: 900},
	}},
	{name: "Takeout", address: "89 Banani Block C, Dhaka", foods: []seedFood{
		{name: "Smoked Beef Burger", price: 420},
	}},
	{name: "Madchef", address: "67 Dhanmondi Road 27, Dhaka", foods: []seedFood{
		{name: "Buffalo Wings", price: 350}, {name: "Loaded Nachos", price: 380},
	}},
	{name: "Chillox", address: "45/D Uttara Sector 11, Dhaka", foods: []seedFood{
		{name: "Blackout Burger", price: 390},
	}},
	{name: "Thai Express", address: "90 Banani Block F, Dhaka", foods: []seedFood{
		{name: "Pad Thai", price: 420}, {name: "Tom Yum Soup", price: 300},
	}},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	log.Println("Starting database cleanup...")
	// delete in FK order
	for _, table := range []string{"votes", "foods", "restaurants", "users", "email_jobs"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
	log.Println("Database cleanup completed")

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := db.Exec("INSERT INTO users (email, password_hash) VALUES ($1, $2)", u.email, string(hash)); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}
	}

	log.Println("Seeding restaurants...")
	for _, r := range restaurants {
		var restaurantID string
		err := db.QueryRow(
			"INSERT INTO restaurants (name, address) VALUES ($1, $2) RETURNING id",
			r.name, r.address,
		).Scan(&restaurantID)
		if err != nil {
			log.Fatalf("Failed to create restaurant %s: %v", r.name, err)
		}

		for _, f := range r.foods {
			if _, err := db.Exec(
				"INSERT INTO foods (name, price, restaurant_id) VALUES ($1, $2, $3)",
				f.name, f.price, restaurantID,
			); err != nil {
				log.Fatalf("Failed to create food %s: %v", f.name, err)
			}
		}
		log.Printf("Created restaurant: %s", r.name)
	}

	log.Println("Seeding completed successfully")
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
