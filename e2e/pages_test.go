//go:build e2e

package e2e

import (
	"fmt"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/Juan171109/automation-task/internal/storage"
)

var waitTimeout = playwright.Float(5000)

// LoginPage drives the login view
type LoginPage struct {
	t    *testing.T
	page playwright.Page
}

func NewLoginPage(t *testing.T, page playwright.Page) *LoginPage {
	return &LoginPage{t: t, page: page}
}

func (p *LoginPage) Visit() *LoginPage {
	p.t.Helper()
	if _, err := p.page.Goto("/"); err != nil {
		p.t.Fatalf("Failed to navigate to login page: %v", err)
	}
	return p
}

func (p *LoginPage) TypeUsername(value string) *LoginPage {
	p.t.Helper()
	if err := p.page.Locator("#username").Fill(value); err != nil {
		p.t.Fatalf("Failed to type username: %v", err)
	}
	return p
}

func (p *LoginPage) TypePassword(value string) *LoginPage {
	p.t.Helper()
	if err := p.page.Locator("#password").Fill(value); err != nil {
		p.t.Fatalf("Failed to type password: %v", err)
	}
	return p
}

func (p *LoginPage) Submit() *LoginPage {
	p.t.Helper()
	if err := p.page.Locator(`button[type="submit"]`).Click(); err != nil {
		p.t.Fatalf("Failed to submit login form: %v", err)
	}
	return p
}

func (p *LoginPage) Login(user, pass string) *LoginPage {
	return p.TypeUsername(user).TypePassword(pass).Submit()
}

func (p *LoginPage) VerifyErrorMessage(message string) *LoginPage {
	p.t.Helper()
	errorMessage := p.page.Locator("#errorMessage")
	if err := errorMessage.WaitFor(playwright.LocatorWaitForOptions{Timeout: waitTimeout}); err != nil {
		p.t.Fatalf("Error message did not appear: %v", err)
	}
	text, err := errorMessage.TextContent()
	if err != nil {
		p.t.Fatalf("Failed to read error message: %v", err)
	}
	if text != message {
		p.t.Errorf("Expected error message '%s', got '%s'", message, text)
	}
	return p
}

// ShopPage drives the shop view
type ShopPage struct {
	t    *testing.T
	page playwright.Page
}

func NewShopPage(t *testing.T, page playwright.Page) *ShopPage {
	return &ShopPage{t: t, page: page}
}

func (p *ShopPage) Visit() *ShopPage {
	p.t.Helper()
	if _, err := p.page.Goto("/shop.html"); err != nil {
		p.t.Fatalf("Failed to navigate to shop page: %v", err)
	}
	return p
}

func (p *ShopPage) Search(term string) *ShopPage {
	p.t.Helper()
	if err := p.page.Locator("#searchInput").Fill(term); err != nil {
		p.t.Fatalf("Failed to type search term: %v", err)
	}
	return p.ClickSearchButton()
}

func (p *ShopPage) ClickSearchButton() *ShopPage {
	p.t.Helper()
	clickAndWait(p.t, p.page, p.page.Locator("button:has-text('Search')"), "Search")
	return p
}

func (p *ShopPage) ProductCards() playwright.Locator {
	return p.page.Locator(".product-card")
}

func (p *ShopPage) ProductName(index int) string {
	p.t.Helper()
	name, err := p.ProductCards().Nth(index).Locator("h3").TextContent()
	if err != nil {
		p.t.Fatalf("Failed to read product name: %v", err)
	}
	return name
}

func (p *ShopPage) AddProductAt(index int) *ShopPage {
	p.t.Helper()
	clickAndWait(p.t, p.page, p.ProductCards().Nth(index).Locator("button:has-text('Add to Basket')"), "Add to Basket")
	return p
}

func (p *ShopPage) AddProductToBasket(productName string) *ShopPage {
	p.t.Helper()
	card := p.ProductCards().Filter(playwright.LocatorFilterOptions{HasText: productName})
	clickAndWait(p.t, p.page, card.Locator("button:has-text('Add to Basket')"), "Add to Basket for "+productName)
	return p
}

func (p *ShopPage) GoToBasket() *ShopPage {
	p.t.Helper()
	if err := p.page.Locator("button:has-text('View Basket')").Click(); err != nil {
		p.t.Fatalf("Failed to click View Basket: %v", err)
	}
	waitForURL(p.t, p.page, "**/basket.html")
	return p
}

func (p *ShopPage) Logout() *ShopPage {
	p.t.Helper()
	if err := p.page.Locator("button:has-text('Logout')").Click(); err != nil {
		p.t.Fatalf("Failed to click Logout: %v", err)
	}
	waitForURL(p.t, p.page, "**/index.html")
	return p
}

func (p *ShopPage) VerifyProductsCount(count int) *ShopPage {
	p.t.Helper()
	got, err := p.ProductCards().Count()
	if err != nil {
		p.t.Fatalf("Failed to count product cards: %v", err)
	}
	if got != count {
		p.t.Errorf("Expected %d product cards, got %d", count, got)
	}
	return p
}

// BasketPage drives the basket view
type BasketPage struct {
	t    *testing.T
	page playwright.Page
}

func NewBasketPage(t *testing.T, page playwright.Page) *BasketPage {
	return &BasketPage{t: t, page: page}
}

func (p *BasketPage) Visit() *BasketPage {
	p.t.Helper()
	if _, err := p.page.Goto("/basket.html"); err != nil {
		p.t.Fatalf("Failed to navigate to basket page: %v", err)
	}
	return p
}

func (p *BasketPage) Items() playwright.Locator {
	return p.page.Locator("#basketList .product-card")
}

func (p *BasketPage) ClearBasket() *BasketPage {
	p.t.Helper()
	clickAndWait(p.t, p.page, p.page.Locator("button:has-text('Clear Basket')"), "Clear Basket")
	return p
}

func (p *BasketPage) BackToShop() *BasketPage {
	p.t.Helper()
	if err := p.page.Locator("button:has-text('Back to Shop')").Click(); err != nil {
		p.t.Fatalf("Failed to click Back to Shop: %v", err)
	}
	waitForURL(p.t, p.page, "**/shop.html")
	return p
}

func (p *BasketPage) Logout() *BasketPage {
	p.t.Helper()
	if err := p.page.Locator("button:has-text('Logout')").Click(); err != nil {
		p.t.Fatalf("Failed to click Logout: %v", err)
	}
	waitForURL(p.t, p.page, "**/index.html")
	return p
}

func (p *BasketPage) Total() string {
	p.t.Helper()
	total, err := p.page.Locator("#basketTotal").TextContent()
	if err != nil {
		p.t.Fatalf("Failed to read basket total: %v", err)
	}
	return total
}

func (p *BasketPage) VerifyEmptyBasket() *BasketPage {
	p.t.Helper()
	list, err := p.page.Locator("#basketList").TextContent()
	if err != nil {
		p.t.Fatalf("Failed to read basket list: %v", err)
	}
	if !strings.Contains(list, "Your basket is empty") {
		p.t.Errorf("Expected empty basket message, got '%s'", list)
	}
	return p.VerifyTotalAmount("0.00")
}

func (p *BasketPage) VerifyTotalAmount(amount string) *BasketPage {
	p.t.Helper()
	want := fmt.Sprintf("Total: $%s", amount)
	if total := p.Total(); !strings.Contains(total, want) {
		p.t.Errorf("Expected total '%s', got '%s'", want, total)
	}
	return p
}

func (p *BasketPage) VerifyProductInBasket(productName string) *BasketPage {
	p.t.Helper()
	visible, err := p.Items().Filter(playwright.LocatorFilterOptions{HasText: productName}).First().IsVisible()
	if err != nil {
		p.t.Fatalf("Failed to look up %s in basket: %v", productName, err)
	}
	if !visible {
		p.t.Errorf("Expected %s to be in the basket", productName)
	}
	return p
}

// login signs the page in with the configured account and lands on the shop
func login(t *testing.T, page playwright.Page) {
	t.Helper()
	NewLoginPage(t, page).Visit().Login(username, password)
	waitForURL(t, page, "**/shop.html")
}

// clickAndWait clicks a control that submits a form and waits for the
// resulting page to load
func clickAndWait(t *testing.T, page playwright.Page, control playwright.Locator, name string) {
	t.Helper()
	_, err := page.ExpectNavigation(func() error {
		return control.Click()
	}, playwright.PageExpectNavigationOptions{Timeout: waitTimeout})
	if err != nil {
		t.Fatalf("Failed to click %s: %v", name, err)
	}
}

func waitForURL(t *testing.T, page playwright.Page, pattern string) {
	t.Helper()
	if err := page.WaitForURL(pattern, playwright.PageWaitForURLOptions{Timeout: waitTimeout}); err != nil {
		t.Fatalf("Did not reach %s: %v", pattern, err)
	}
}

// notification returns the text of the one-shot notification banner
func notification(t *testing.T, page playwright.Page) string {
	t.Helper()
	banner := page.Locator("#notification")
	if err := banner.WaitFor(playwright.LocatorWaitForOptions{Timeout: waitTimeout}); err != nil {
		t.Fatalf("Notification did not appear: %v", err)
	}
	text, err := banner.TextContent()
	if err != nil {
		t.Fatalf("Failed to read notification: %v", err)
	}
	return text
}

// storedBasket reads the persisted basket of the page's client
func storedBasket(t *testing.T, page playwright.Page) []storage.BasketRecord {
	t.Helper()
	raw, err := page.Evaluate(`async () => (await fetch("/api/basket")).text()`)
	if err != nil {
		t.Fatalf("Failed to fetch stored basket: %v", err)
	}
	text, ok := raw.(string)
	if !ok {
		t.Fatalf("Unexpected basket payload %v", raw)
	}
	records, err := storage.UnmarshalBasket([]byte(text))
	if err != nil {
		t.Fatalf("Stored basket is not valid: %v", err)
	}
	return records
}
