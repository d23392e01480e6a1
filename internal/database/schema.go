package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Schema statements, grouped per entity family. Every CREATE uses
// IF NOT EXISTS so Bootstrap can run on every startup; the ALTERs bring
// older installs up to date and are allowed to fail (logged, not fatal).

var catalogSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(255),
		price DECIMAL(10,2) DEFAULT 0,
		discount INT DEFAULT 0,
		rating DECIMAL(3,2) DEFAULT 0,
		image LONGTEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var cartOrderSchema = []string{
	`CREATE TABLE IF NOT EXISTS carts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		cart_key VARCHAR(255) UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		cart_id INT,
		product_id INT,
		name VARCHAR(255),
		price DECIMAL(10,2),
		qty INT DEFAULT 1,
		image LONGTEXT,
		UNIQUE KEY uq_cart_product (cart_id, product_id),
		FOREIGN KEY (cart_id) REFERENCES carts(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		cart_id INT,
		customer_name VARCHAR(255),
		email VARCHAR(255),
		address TEXT,
		total DECIMAL(10,2),
		status VARCHAR(50) DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT,
		product_id INT,
		name VARCHAR(255),
		price DECIMAL(10,2),
		qty INT,
		image LONGTEXT
	)`,
}

var profileSchema = []string{
	`CREATE TABLE IF NOT EXISTS seller_profiles (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(20),
		company VARCHAR(255),
		address TEXT,
		gst VARCHAR(50),
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS buyer_profiles (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(20),
		address TEXT,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var messageSchema = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100),
		email VARCHAR(100),
		subject VARCHAR(255),
		message TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var subscriptionSchema = []string{
	`CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		subscribed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var planSchema = []string{
	`CREATE TABLE IF NOT EXISTS bm_plans (
		id INT AUTO_INCREMENT PRIMARY KEY,
		fullName VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		company VARCHAR(255),
		plan VARCHAR(100) NOT NULL,
		price VARCHAR(50) NOT NULL,
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var specialsSchema = []string{
	`CREATE TABLE IF NOT EXISTS specials (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255),
		special VARCHAR(255),
		description TEXT,
		price DECIMAL(10,2),
		originalPrice DECIMAL(10,2),
		cuisine VARCHAR(100),
		offer VARCHAR(100),
		image VARCHAR(255),
		searchTerms TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var extendedCatalogSchema = []string{
	`CREATE TABLE IF NOT EXISTS products_extended (
		id INT AUTO_INCREMENT PRIMARY KEY,
		productName VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		brand VARCHAR(255),
		category VARCHAR(100) NOT NULL,
		description LONGTEXT,
		price DECIMAL(12,2) NOT NULL,
		discount INT DEFAULT 0,
		finalPrice DECIMAL(12,2),
		quantity INT DEFAULT 1,
		quantityUnit VARCHAR(50),
		rating DECIMAL(3,2) DEFAULT 0,
		moq INT DEFAULT 1,
		warranty INT DEFAULT 0,
		color VARCHAR(100),
		imageUrl VARCHAR(500),
		imagePath VARCHAR(500),
		cementType VARCHAR(50),
		cementGrade VARCHAR(50),
		settingTime INT,
		compressiveStrength DECIMAL(6,2),
		brickType VARCHAR(50),
		brickSize VARCHAR(50),
		weight DECIMAL(6,2),
		materialType VARCHAR(100),
		thickness INT,
		density INT,
		application VARCHAR(200),
		steelType VARCHAR(50),
		diameter DECIMAL(6,2),
		steelGrade VARCHAR(50),
		yieldStrength INT,
		plumbingType VARCHAR(50),
		material VARCHAR(50),
		pressureRating INT,
		interiorType VARCHAR(50),
		finishType VARCHAR(50),
		coverage DECIMAL(8,2),
		installation VARCHAR(50),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		status ENUM('active', 'inactive', 'draft') DEFAULT 'active',
		createdBy VARCHAR(255),
		seller_id INT
	)`,
}

// Image columns hold base64 payloads that can exceed TEXT. MODIFY is a
// no-op when the column is already LONGTEXT, so failures here only matter
// for installs where the table predates the column.
var tolerantAlters = []string{
	`ALTER TABLE products MODIFY COLUMN image LONGTEXT`,
	`ALTER TABLE cart_items MODIFY COLUMN image LONGTEXT`,
	`ALTER TABLE order_items MODIFY COLUMN image LONGTEXT`,
}

// Bootstrap creates every table the server needs. It is safe to run on
// every startup and safe to run twice.
func Bootstrap(db *sql.DB) error {
	groups := [][]string{
		catalogSchema,
		cartOrderSchema,
		profileSchema,
		messageSchema,
		subscriptionSchema,
		planSchema,
		specialsSchema,
		extendedCatalogSchema,
	}

	for _, group := range groups {
		for _, stmt := range group {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("schema bootstrap: %w", err)
			}
		}
	}

	for _, stmt := range tolerantAlters {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("WARNING: schema alter skipped: %v", err)
		}
	}

	log.Println("Schema bootstrap complete")
	return nil
}
