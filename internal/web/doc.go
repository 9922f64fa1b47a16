// Package web renders the kiosk page as templ components.
package web
