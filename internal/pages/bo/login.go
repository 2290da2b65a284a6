package bo

import "github.com/themizzi/shopcheck/internal/page"

const (
	loginEmailInput    = "#email"
	loginPasswordInput = "#passwd"
	loginSubmitButton  = "#submit_login"
	loginErrorAlert    = "#error p"
)

// Login is the back-office sign-in form
type Login struct {
	Base
}

// ExpectedTitle is the document title of the login page
func (p Login) ExpectedTitle() string {
	return p.Title("PrestaShop")
}

// Open goes to the back office, which shows the login form to anonymous visitors
func (p Login) Open(tab page.Tab) error {
	return p.GoTo(tab, p.Shop.BackOfficeURL)
}

// SignIn submits the form and waits for the dashboard to load
func (p Login) SignIn(tab page.Tab, email, password string) error {
	if err := p.SetValue(tab, loginEmailInput, email); err != nil {
		return err
	}
	if err := p.SetValue(tab, loginPasswordInput, password); err != nil {
		return err
	}
	return p.ClickAndWaitForURL(tab, loginSubmitButton)
}

// LoginError returns the error shown after a rejected sign in
func (p Login) LoginError(tab page.Tab) (string, error) {
	return p.TextContent(tab, loginErrorAlert)
}

// Dashboard is the back-office landing page
type Dashboard struct {
	Base
}

// ExpectedTitle is the document title of the dashboard
func (p Dashboard) ExpectedTitle() string {
	return p.Title("Dashboard")
}
