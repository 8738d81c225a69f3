//go:build e2e

package e2e

import (
	"testing"
)

// TestShoppingJourney tests a full visit from login to logout
// Feature: Shopping journey
//
//	Scenario: Login, search, fill the basket, clear it and log out
//	  Given I am logged in
//	  When I search for "milk" and add "Whole Milk"
//	  And I add "Cheddar Cheese" from the full list
//	  Then my basket should total $9.24
//	  When I clear the basket
//	  Then my basket should be empty
//	  When I add "Free Range Eggs" and log out
//	  Then I should be back on the login page with an empty basket
func TestShoppingJourney(t *testing.T) {
	page := newPage(t)

	// Given I am logged in
	login(t, page)
	shop := NewShopPage(t, page)
	basket := NewBasketPage(t, page)

	// When I search for "milk" and add "Whole Milk"
	shop.Search("milk").VerifyProductsCount(1)
	shop.AddProductToBasket("Whole Milk")
	if got := notification(t, page); got != "Whole Milk added to basket!" {
		t.Errorf("Expected notification 'Whole Milk added to basket!', got '%s'", got)
	}

	// And I add "Cheddar Cheese" from the full list
	shop.Search("").AddProductToBasket("Cheddar Cheese")

	// Then my basket should total $9.24
	shop.GoToBasket()
	basket.VerifyProductInBasket("Whole Milk").
		VerifyProductInBasket("Cheddar Cheese").
		VerifyTotalAmount("9.24")

	// When I clear the basket
	basket.ClearBasket()

	// Then my basket should be empty
	basket.VerifyEmptyBasket()

	// When I add "Free Range Eggs" and log out
	basket.BackToShop()
	shop.AddProductToBasket("Free Range Eggs")
	if records := storedBasket(t, page); len(records) != 1 {
		t.Fatalf("Expected one stored line, got %d", len(records))
	}
	shop.Logout()

	// Then I should be back on the login page with an empty basket
	if records := storedBasket(t, page); len(records) != 0 {
		t.Errorf("Expected empty stored basket, got %+v", records)
	}
	if _, err := page.Goto("/shop.html"); err != nil {
		t.Fatalf("Failed to navigate to shop page: %v", err)
	}
	waitForURL(t, page, "**/index.html")
}
