package service

import "github.com/anylist/anylist-api/internal/core/domain"

type seedUser struct {
	fullName string
	email    string
	password string
	roles    []domain.Role
	isActive bool
}

type seedItem struct {
	name          string
	quantityUnits string
}

// Development fixtures. The first user owns every seeded item.
var seedUsers = []seedUser{
	{
		fullName: "Ada Lovelace",
		email:    "ada@example.com",
		password: "Abc12345",
		roles:    []domain.Role{domain.RoleAdmin},
		isActive: true,
	},
	{
		fullName: "Grace Hopper",
		email:    "grace@example.com",
		password: "Abc12345",
		roles:    []domain.Role{domain.RoleUser},
		isActive: true,
	},
	{
		fullName: "Alan Turing",
		email:    "alan@example.com",
		password: "Abc12345",
		roles:    []domain.Role{domain.RoleSuperUser},
		isActive: true,
	},
	{
		fullName: "Blocked Account",
		email:    "blocked@example.com",
		password: "Abc12345",
		roles:    []domain.Role{domain.RoleUser},
		isActive: false,
	},
}

var seedItems = []seedItem{
	{name: "Tomatoes", quantityUnits: "kg"},
	{name: "Olive Oil", quantityUnits: "bottle"},
	{name: "Rice", quantityUnits: "kg"},
	{name: "Paper Towels", quantityUnits: "rolls"},
	{name: "Coffee Beans", quantityUnits: "g"},
	{name: "Sponges", quantityUnits: ""},
}
