package fixtures

// Module is a module shipped with the shop
type Module struct {
	Name string
	Tag  string
}

// OrderStatus is an order state configured in the back office
type OrderStatus struct {
	ID   int
	Name string
}

// Carrier is a shipping method
type Carrier struct {
	ID   int
	Name string
}

// PaymentMethod is a payment module offered at checkout
type PaymentMethod struct {
	Name       string
	ModuleName string
}

// Product is a product of the demo catalog
type Product struct {
	ID   int
	Name string
}

// Demo data installed with the shop
var (
	JohnDoe = Customer{
		FirstName: "John",
		LastName:  "DOE",
		Email:     "pub@prestashop.com",
		Password:  "123456789",
	}

	ContactForm = Module{Name: "Contact form", Tag: "contactform"}

	PaymentAccepted = OrderStatus{ID: 2, Name: "Payment accepted"}
	Shipped         = OrderStatus{ID: 4, Name: "Shipped"}

	ClickAndCollect = Carrier{ID: 1, Name: "Click and collect"}

	CheckPayment = PaymentMethod{Name: "Pay by Check", ModuleName: "ps_checkpayment"}
	WirePayment  = PaymentMethod{Name: "Pay by bank wire", ModuleName: "ps_wirepayment"}

	MugBestIsYetToCome = Product{ID: 6, Name: "Mug The best is yet to come"}
)
