package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

func main() {
	schoolID := flag.String("school", "", "school id the user belongs to")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", models.RoleAccountant, "role name")
	flag.Parse()

	if *schoolID == "" || *email == "" || *password == "" {
		log.Fatal("usage: add_user -school <id> -email <email> -password <password> [-first-name] [-last-name] [-role]")
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		SchoolID:  *schoolID,
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		log.Fatalf("Error creating user: %v", err)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
