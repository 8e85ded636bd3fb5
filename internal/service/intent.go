package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/search"
)

var (
	greetingRe = regexp.MustCompile(`^(hello|hi|hey|namaste)\b`)
	bhkRe      = regexp.MustCompile(`(\d+)\s*bhk`)
	houseRe    = regexp.MustCompile(`villa|house|bungalow|independent`)
	budgetRe   = regexp.MustCompile(`(?:under|below|within)\s+(?:rs\.?\s*|₹\s*)?(\d+(?:\.\d+)?)\s*(lakhs?|lacs?|l\b|crores?|cr\b)`)
	cityRe     = regexp.MustCompile(`\bin\s+([a-z][a-z .\-]*)`)
)

type chatIntent int

const (
	intentHelp chatIntent = iota
	intentGreeting
	intentMenu
	intentSearch
)

// chatQuery is an inbound text message reduced to what the bot will do with it.
type chatQuery struct {
	intent    chatIntent
	title     string
	predicate search.Predicate
}

// parseChatQuery matches a free-text message against the supported phrases.
// Search phrases combine, so "2 bhk villa in kochi under 1 crore" yields one filter.
func parseChatQuery(text string) chatQuery {
	q := strings.ToLower(strings.TrimSpace(text))

	if greetingRe.MatchString(q) {
		return chatQuery{intent: intentGreeting}
	}
	if strings.Contains(q, "menu") {
		return chatQuery{intent: intentMenu}
	}

	var (
		pred  search.Predicate
		parts []string
	)
	if m := bhkRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			pred.MinBedrooms = &n
			parts = append(parts, fmt.Sprintf("%d BHK", n))
		}
	}
	if houseRe.MatchString(q) {
		pred.PropertyType = []model.PropertyType{model.PropertyTypeVilla, model.PropertyTypeHouse}
		parts = append(parts, "Villas & Houses")
	}
	if m := budgetRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			limit := n * 1e5
			if strings.HasPrefix(m[2], "c") {
				limit = n * 1e7
			}
			pred.MaxPrice = &limit
			parts = append(parts, "under ₹"+FormatPrice(limit))
		}
	}
	if m := cityRe.FindStringSubmatch(q); m != nil {
		city := m[1]
		for _, stop := range []string{" under ", " below ", " within ", " with "} {
			if i := strings.Index(city+" ", stop); i >= 0 {
				city = city[:i]
			}
		}
		city = strings.TrimSpace(city)
		if city != "" {
			pred.City = city
			parts = append(parts, "in "+titleCase(city))
		}
	}

	if len(parts) == 0 {
		return chatQuery{intent: intentHelp}
	}
	title := strings.Join(parts, " ")
	if pred.PropertyType == nil {
		title = "Properties " + title
		if pred.MinBedrooms != nil && len(parts) == 1 {
			title = parts[0] + " Properties"
		}
	}
	return chatQuery{intent: intentSearch, title: title, predicate: pred}
}

// FormatPrice renders an amount in rupees the Indian way: crores, lakhs,
// or digits grouped as 12,34,567.
func FormatPrice(price float64) string {
	switch {
	case price >= 1e7:
		return fmt.Sprintf("%.2f Cr", price/1e7)
	case price >= 1e5:
		return fmt.Sprintf("%.2f Lakhs", price/1e5)
	}

	whole, frac := math.Modf(math.Round(price*100) / 100)
	s := groupIndian(int64(whole))
	if cents := int64(math.Round(math.Abs(frac) * 100)); cents > 0 {
		s += strings.TrimRight(fmt.Sprintf(".%02d", cents), "0")
	}
	return s
}

func groupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

const (
	greetingText = "👋 Hello! Welcome to *Real Estate Properties*!\n\n" +
		"Try:\n• \"2BHK apartments\"\n• \"Properties under 50 lakhs\"\n• \"Villas in Bangalore\"\n\n" +
		"Type *menu* to see all options."
	menuText = "📋 *Main Menu*\n\n" +
		"1️⃣ Search by type\n2️⃣ Search by budget\n3️⃣ Search by location\n" +
		"4️⃣ Commercial properties\n5️⃣ Talk to agent"
	helpText = "🏠 I can help you find properties!\n" +
		"Try:\n• \"2BHK apartments\"\n• \"Villas in Bangalore\"\n• \"Properties under 50 lakhs\""
	noResultsText = "😕 No properties found."
	apologyText   = "Sorry, I encountered an error. Please try again later."
)

// formatPropertyList renders search results as a numbered WhatsApp message.
func formatPropertyList(props []model.Property, title string) string {
	if len(props) == 0 {
		return noResultsText
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🏠 *%s*\n\n", title)
	for i, p := range props {
		name := p.Title
		if name == "" {
			name = "Property"
		}
		place := p.Address.City
		if p.Address.State != "" {
			place += ", " + p.Address.State
		}
		fmt.Fprintf(&b, "*%d. %s*\n📍 %s\n💰 ₹%s\n\n", i+1, name, place, FormatPrice(p.Price))
	}
	return strings.TrimRight(b.String(), "\n")
}
