package config

import (
	"fmt"
	"strings"
)

// ShopConfig holds the addresses and credentials of the shop under test
type ShopConfig struct {
	FrontOfficeURL string
	BackOfficeURL  string
	APIURL         string
	ShopName       string
	AdminEmail     string
	AdminPassword  string
}

// LoadShopConfig loads the shop under test configuration from environment variables
func LoadShopConfig(getenv func(string) string) (*ShopConfig, error) {
	config := &ShopConfig{
		FrontOfficeURL: getenv("URL_FO"),
		BackOfficeURL:  getenv("URL_BO"),
		APIURL:         getenv("URL_API"),
		ShopName:       getenv("SHOP_NAME"),
		AdminEmail:     getenv("BO_LOGIN"),
		AdminPassword:  getenv("BO_PASSWD"),
	}

	// Validate required fields
	if config.FrontOfficeURL == "" {
		return nil, fmt.Errorf("URL_FO is required")
	}
	if config.AdminEmail == "" {
		return nil, fmt.Errorf("BO_LOGIN is required")
	}
	if config.AdminPassword == "" {
		return nil, fmt.Errorf("BO_PASSWD is required")
	}

	config.FrontOfficeURL = withTrailingSlash(config.FrontOfficeURL)
	if config.BackOfficeURL == "" {
		config.BackOfficeURL = config.FrontOfficeURL + "admin-dev/"
	}
	config.BackOfficeURL = withTrailingSlash(config.BackOfficeURL)
	if config.APIURL == "" {
		config.APIURL = config.FrontOfficeURL + "admin-api/"
	}
	config.APIURL = withTrailingSlash(config.APIURL)
	if config.ShopName == "" {
		config.ShopName = "PrestaShop"
	}

	return config, nil
}

func withTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
