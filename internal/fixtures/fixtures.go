// Package fixtures generates randomised but valid payloads for the forms the
// scenarios fill in, and holds the demo data installed with the shop.
package fixtures

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces fixtures from one random source
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a generator. A zero seed picks a random one.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Customer is a front-office customer account
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// FullName is the identity the storefront displays for the customer
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Customer returns a customer that does not exist in the shop
func (g *Generator) Customer() Customer {
	return Customer{
		FirstName: g.faker.FirstName(),
		LastName:  g.faker.LastName(),
		Email:     fmt.Sprintf("%s.%s@prestashop.com", strings.ToLower(g.faker.LetterN(6)), g.faker.Numerify("####")),
		Password:  g.faker.Password(true, true, true, false, false, 12),
	}
}

// Group is a customer group
type Group struct {
	Name               string
	FrenchName         string
	Discount           int
	PriceDisplayMethod string
	ShownPrices        bool
}

// Group returns a customer group with a unique name
func (g *Generator) Group() Group {
	name := g.faker.JobTitle() + " " + g.faker.LetterN(4)
	return Group{
		Name:               name,
		FrenchName:         name,
		Discount:           g.faker.Number(0, 50),
		PriceDisplayMethod: g.faker.RandomString([]string{"Tax included", "Tax excluded"}),
		ShownPrices:        true,
	}
}

// APIClient is a client of the admin API
type APIClient struct {
	ClientID      string
	ClientName    string
	Description   string
	Enabled       bool
	Scopes        []string
	TokenLifetime int
}

// APIClientOption customises a generated API client
type APIClientOption func(*APIClient)

// WithEnabled sets whether the client can request tokens
func WithEnabled(enabled bool) APIClientOption {
	return func(c *APIClient) { c.Enabled = enabled }
}

// WithScopes sets the scopes granted to the client
func WithScopes(scopes ...string) APIClientOption {
	return func(c *APIClient) { c.Scopes = scopes }
}

// APIClient returns an API client with a unique id
func (g *Generator) APIClient(opts ...APIClientOption) APIClient {
	client := APIClient{
		ClientID:      strings.ToLower(g.faker.LetterN(10)),
		ClientName:    g.faker.Company(),
		Description:   g.faker.Sentence(8),
		Enabled:       g.faker.Bool(),
		TokenLifetime: g.faker.Number(3600, 7200),
	}
	for _, opt := range opts {
		opt(&client)
	}
	return client
}

// AttributeValue is a value of a product attribute such as a colour
type AttributeValue struct {
	AttributeName string
	Value         string
	URL           string
	Color         string
	MetaTitle     string
}

// AttributeValue returns a value for the named attribute
func (g *Generator) AttributeValue(attribute string) AttributeValue {
	value := g.faker.Color() + " " + g.faker.LetterN(3)
	return AttributeValue{
		AttributeName: attribute,
		Value:         value,
		URL:           strings.ToLower(strings.ReplaceAll(value, " ", "-")),
		Color:         g.faker.HexColor(),
		MetaTitle:     g.faker.Word(),
	}
}
