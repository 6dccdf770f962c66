package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real App
// type satisfies it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
	ProductImage(ctx context.Context) error
	Customers(ctx context.Context) error
	AddCustomer(ctx context.Context) error
	Sales(ctx context.Context) error
	NewSale(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches to 'a'. It exits on
// scanner EOF or "exit"/"quit". Handlers log their own errors, so failures
// never break the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pos %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (p)roducts, addproduct, productimage, customers, addcustomer, sales, newsale, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "productimage":
			_ = a.ProductImage(ctx)

		case "customers":
			_ = a.Customers(ctx)

		case "addcustomer":
			_ = a.AddCustomer(ctx)

		case "sales":
			_ = a.Sales(ctx)

		case "newsale":
			_ = a.NewSale(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
