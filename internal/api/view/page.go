package view

import (
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/service"
)

// Page page names.
const (
	PageSignIn         = "sign_in"
	PageSignUp         = "sign_up"
	PageAdminDashboard = "admin_dashboard"
	PageAdminProfile   = "admin_profile"
	PageCustomers      = "customers"
	PageServices       = "services"
	PageCustDashboard  = "cust_dashboard"
	PageError          = "error"
)

// MenuItem is one sidebar entry. Items without Href render disabled.
type MenuItem struct {
	Key    string
	Title  string
	Href   string
	Icon   string
	Active bool
}

// Page is the data every template receives.
type Page struct {
	Title  string
	Menu   []MenuItem
	Notice *dialog.Notice
	Data   any
}

// Menu keys.
const (
	MenuHome      = "home"
	MenuProfile   = "profile"
	MenuAdmins    = "admins"
	MenuCustomers = "customers"
	MenuServices  = "services"
	MenuBills     = "bills"
	MenuPayments  = "payments"
)

// AdminMenu returns the admin sidebar with active highlighted.
func AdminMenu(active string) []MenuItem {
	items := []MenuItem{
		{Key: MenuHome, Title: "Home", Href: "/admin/dashboard", Icon: "⌂"},
		{Key: MenuProfile, Title: "My Profile", Href: "/admin/profile", Icon: "✎"},
		{Key: MenuAdmins, Title: "Admin Data", Icon: "☺"},
		{Key: MenuCustomers, Title: "Customer Data", Href: "/admin/customers", Icon: "☷"},
		{Key: MenuServices, Title: "Services", Href: "/admin/services", Icon: "⚒"},
		{Key: MenuBills, Title: "Bill", Icon: "▤"},
		{Key: MenuPayments, Title: "Payments", Icon: "¤"},
	}
	for i := range items {
		items[i].Active = items[i].Key == active
	}
	return items
}

// AdminPage builds a page with the admin sidebar.
func AdminPage(title, active string, data any) Page {
	return Page{Title: title, Menu: AdminMenu(active), Data: data}
}

// CustomerMenu is the sidebar shown to customers.
func CustomerMenu() []MenuItem {
	return []MenuItem{
		{Key: MenuHome, Title: "Home", Href: "/cust/dashboard", Icon: "⌂", Active: true},
		{Key: MenuBills, Title: "Bill", Icon: "▤"},
		{Key: MenuPayments, Title: "Payments", Icon: "¤"},
	}
}

// ErrorData is rendered by the error page and by pages that fail to load
// their record.
type ErrorData struct {
	Status  int
	Message string
}

// CustomersData backs the customer list view.
type CustomersData struct {
	Customers []domain.Customer
	Stats     service.CustomerStats
}

// ServicesData backs the service package list view.
type ServicesData struct {
	Services []domain.Service
	Stats    service.ServiceStats
}

// AdminData backs the admin dashboard. Error is set when the record could not
// be loaded.
type AdminData struct {
	Admin *domain.Admin
	Error string
}

// ProfileFields are the locally editable profile values.
type ProfileFields struct {
	Name     string `form:"name"`
	Username string `form:"username"`
	Phone    string `form:"phone"`
}

// ProfileData backs the admin profile page.
type ProfileData struct {
	Admin   *domain.Admin
	Error   string
	Fields  ProfileFields
	Editing bool
	Saved   bool
}

// CustomerData backs the customer dashboard.
type CustomerData struct {
	Customer *domain.Customer
	Error    string
}

// SignInData re-populates the sign-in form.
type SignInData struct {
	Username   string
	Registered bool
}

// SignUpData re-populates the sign-up form. The password is never echoed.
type SignUpData struct {
	Username string
	Name     string
	Phone    string
}
