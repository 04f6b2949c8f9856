// Package srs produces the TruckSuvidha Software Requirements Specification.
//
// The package is pure content: it appends blocks to a model.Builder in the
// fixed reading order of the report and supplies the styles those blocks use.
package srs

import (
	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/style"
)

// DefaultOutput is the file name the report is saved under.
const DefaultOutput = "TruckSuvidha_SRS.docx"

// Metadata returns the package properties of the report.
func Metadata() model.Metadata {
	return model.Metadata{
		Title:    "Software Requirements Specification",
		Subject:  "TruckSuvidha - Truck Booking System",
		Author:   "Development Team",
		Keywords: []string{"SRS", "TruckSuvidha", "logistics"},
	}
}

// Styles returns the style sheet the report is written against.
func Styles() []style.StyleSpec {
	return style.DefaultSheet()
}

// Document builds the report against reg, which must already hold every
// style in Styles.
func Document(reg *style.Registry) (*model.Document, error) {
	b := model.NewBuilder(reg)
	b.SetMetadata(Metadata())
	Build(b)
	return b.Build()
}

// Build appends the whole report to b. Errors are collected by the builder.
func Build(b *model.Builder) {
	titlePage(b)
	revisionHistory(b)
	introduction(b)
	generalDescription(b)
	specificRequirements(b)
	analysisModels(b)
	administrative(b)
	appendices(b)
}

func bullets(b *model.Builder, items ...string) {
	for _, item := range items {
		b.Bullet(item)
	}
}

func listParagraphs(b *model.Builder, items ...string) {
	for _, item := range items {
		b.StyledParagraph(style.ListParagraphName, model.Plain(item))
	}
}

func texts(b *model.Builder, items ...string) {
	for _, item := range items {
		b.Text(item)
	}
}

// withHeader prepends a header row to rows.
func withHeader(header []string, rows ...[]string) [][]string {
	return append([][]string{header}, rows...)
}

func titlePage(b *model.Builder) {
	b.Heading("Software Requirements Specification", 0)
	b.StyledParagraph(style.SubtitleName, model.Plain("TruckSuvidha - Truck Booking System"))
	b.PageBreak()
}

func revisionHistory(b *model.Builder) {
	b.Heading("Revision History", 1)
	b.Table(withHeader(
		[]string{"Version", "Date", "Author", "Description"},
		[]string{"1.0", "December 25, 2024", "Development Team", "Initial SRS Document"},
	))
	b.Paragraph()

	b.Heading("Table of Contents", 1)
	b.Text("(Please update the Table of Contents in Word automatically via References > Update Table)")
	b.PageBreak()
}

func introduction(b *model.Builder) {
	b.Heading("1. Introduction", 1)
	b.Text("The TruckSuvidha platform is a comprehensive web-based logistics solution designed to connect shippers with transporters across India. This SRS document provides a detailed description of the system requirements.")

	b.Heading("1.1 Purpose", 2)
	b.Text("The purpose of this SRS is to define the requirements for the TruckSuvidha platform.")
	b.Bullet("Product Name: TruckSuvidha - Truck Booking Platform")
	b.Text("What the software will do:")
	bullets(b,
		"Enable customers to post loads/shipments with detailed requirements.",
		"Allow transporters/drivers to browse and bid on available loads.",
		"Facilitate secure payment processing through Razorpay integration.",
		"Provide real-time order status tracking throughout the delivery lifecycle.",
		"Support multiple authentication methods including email/password and Google OAuth.",
	)
	b.Text("What the software will NOT do:")
	bullets(b,
		"Provide physical transportation services directly.",
		"Handle insurance claims or disputes.",
		"Provide real-time GPS vehicle tracking (status-based tracking only).",
	)

	b.Heading("1.2 Scope", 2)
	b.Text("Product Overview: TruckSuvidha is a full-stack web application serving as a digital marketplace for logistics services in India.")
	b.Text("System Boundaries:")
	bullets(b,
		"Web-based platform accessible via modern browsers.",
		"Backend deployed on Vercel.",
		"Database hosted on MongoDB Atlas.",
		"Payments handled through Razorpay.",
	)

	b.Heading("1.3 Definitions, Acronyms, and Abbreviations", 2)
	b.Table(withHeader(
		[]string{"Term", "Definition"},
		[]string{"SRS", "Software Requirements Specification"},
		[]string{"API", "Application Programming Interface"},
		[]string{"JWT", "JSON Web Token - Used for secure authentication"},
		[]string{"OAuth", "Open Authorization - Standard for token-based authentication"},
		[]string{"REST", "Representational State Transfer - API architecture style"},
		[]string{"MT", "Metric Ton - Unit of weight measurement"},
		[]string{"OTP", "One-Time Password"},
		[]string{"Load", "Shipment or cargo that needs to be transported"},
		[]string{"Quote", "Price bid submitted by a transporter for a load"},
		[]string{"Transporter", "Driver or trucking company providing transport services"},
		[]string{"Shipper", "Customer who needs goods transported"},
	))

	b.Heading("1.4 References", 2)
	b.Table(withHeader(
		[]string{"Document/Resource", "Description"},
		[]string{"MongoDB Documentation", "https://docs.mongodb.com/"},
		[]string{"Express.js Documentation", "https://expressjs.com/"},
		[]string{"React Documentation", "https://react.dev/"},
		[]string{"Razorpay API Documentation", "https://razorpay.com/docs/"},
		[]string{"JWT.io", "https://jwt.io/"},
	))

	b.Heading("1.5 Overview", 2)
	b.Text("This SRS is organized into sections covering the general description, specific functional/non-functional requirements, analysis models, and administrative details.")
}

const architectureDiagram = `
┌───────────────────────────────────────┐
│              CLIENT LAYER             │
│   React 18 + Vite Frontend (SPA)      │
└───────────────────────────────────────┘
                   │
                   ▼
┌───────────────────────────────────────┐
│              SERVER LAYER             │
│ Node.js + Express.js Backend (REST)   │
└───────────────────────────────────────┘
                   │
    ┌──────────────┼──────────────┐
    ▼              ▼              ▼
┌─────────┐   ┌─────────┐   ┌─────────┐
│ MongoDB │   │ Razorpay│   │ Google  │
│  Atlas  │   │         │   │  OAuth  │
└─────────┘   └─────────┘   └─────────┘
`

func generalDescription(b *model.Builder) {
	b.Heading("2. General Description", 1)

	b.Heading("2.1 Product Perspective", 2)
	b.Text("TruckSuvidha is a standalone web-based logistics platform.")
	b.Paragraph(model.Styled("System Architecture:", style.StrongName))
	b.Monospace(architectureDiagram)

	b.Heading("2.2 Product Functions", 2)
	bullets(b,
		"User Management: Registration, auth, profile mgmt, RBAC.",
		"Load Management: Posting, viewing, lifecycle tracking.",
		"Quote/Bidding: Driver bidding, acceptance, assignment.",
		"Order Lifecycle: Status progression (Open -> Delivered).",
		"Payments: Dynamic fee calculation, Razorpay integration.",
		"Admin Functions: Manage users, loads, trucks, content.",
	)

	b.Heading("2.3 User Characteristics", 2)
	b.Table(withHeader(
		[]string{"User Type", "Expertise", "Primary Tasks"},
		[]string{"Customer", "Basic/Intermediate", "Post loads, make payments, track orders"},
		[]string{"Driver", "Basic (Mobile)", "Browse loads, submit quotes, update status"},
		[]string{"Admin", "Intermediate", "Manage users, loads, content"},
		[]string{"SuperAdmin", "Advanced", "Full system access"},
	))

	b.Heading("2.4 General Constraints", 2)
	bullets(b,
		"Hardware: Device with modern browser/internet.",
		"Software: Chrome v90+, Firefox v88+, Safari v14+.",
		"Security: HTTPS, bcrypt, JWT 24h expiry.",
		"Regulatory: GST and Indian data protection compliance.",
	)

	b.Heading("2.5 Assumptions and Dependencies", 2)
	bullets(b,
		"Assumptions: Stable internet, valid emails, INR currency.",
		"Dependencies: MongoDB Atlas, Razorpay, Google OAuth, Vercel.",
	)
}

func specificRequirements(b *model.Builder) {
	b.Heading("3. Specific Requirements", 1)

	b.Heading("3.1 External Interface Requirements", 2)
	listParagraphs(b,
		"3.1.1 User Interfaces: Responsive (320px-2560px). Pages: Landing, Login, Load Board, Post Load, Profile, Admin.",
		"3.1.2 Hardware Interfaces: Camera access (avatar), Touch input support.",
		"3.1.3 Software Interfaces: MongoDB Wire Protocol, Razorpay API, Google OAuth.",
		"3.1.4 Communications: REST over HTTPS (TLS 1.2), JSON format, SMTP (Email).",
	)

	b.Heading("3.2 Functional Requirements", 2)

	b.Heading("3.2.1 User Registration and Authentication", 3)
	texts(b,
		"Inputs: Email, Password, Name, Role (Customer/Driver), Google OAuth credentials.",
		"Processing: Validate email, hash password (bcrypt), generate JWT.",
		"Error Handling: 400 (Invalid), 409 (Email exists), 401 (Credentials).",
	)

	b.Heading("3.2.2 Load Posting", 3)
	texts(b,
		"Inputs: Load Type, Source/Dest, Material, Weight, Truck Type, Date.",
		"Processing: Calculate fee (Base+Weight+Material), Create Razorpay Order, Verify Signature.",
		"Outputs: Load Object, Payment Record.",
	)

	b.Heading("3.2.3 Quote/Bidding System", 3)
	texts(b,
		"Inputs: LoadID, Amount, Message, Delivery Days.",
		"Processing: Verify driver role. On accept: assign driver, reject others, update load status.",
		"Error Handling: 403 (Non-driver/Own load), 409 (Duplicate).",
	)

	b.Heading("3.2.4 Order Status Management", 3)
	texts(b,
		"Status Flow: Open -> Quoted -> Assigned -> Picked Up -> In Transit -> Delivered -> Completed.",
		"Processing: Validate permission and status transition logic.",
	)

	b.Heading("3.2.5 Payment Processing", 3)
	texts(b,
		"Formula: min(Base + WeightFee + MaterialFee + TruckFee, 1000).",
		"Processing: Verify HMAC SHA256 signature from Razorpay.",
	)

	b.Heading("3.5 Non-Functional Requirements", 2)
	texts(b,
		"3.5.1 Performance: API < 500ms, Page Load < 3s, 100+ Concurrent users.",
		"3.5.2 Reliability: 99% Uptime, Zero data loss.",
		"3.5.3 Availability: 24/7 Service, Max 4h/month maintenance.",
		"3.5.4 Security: TLS 1.2+, JWT Auth, RBAC, CSRF/XSS protection.",
		"3.5.5 Maintainability: Modular MVC, JSDoc.",
		"3.5.6 Portability: Mobile responsive, browser agnostic.",
	)

	b.Heading("3.7 Design Constraints", 2)
	texts(b,
		"Stack: React 18, Node.js, MongoDB.",
		"Deployment: Vercel (10s serverless timeout).",
		"Language: English UI, Hindi Truck sizes.",
	)
}

const contextDiagram = `
     ┌──────────────┐                       ┌──────────────┐
     │   Customer   │◄──────┐       ┌──────►│    Driver    │
     │  (Shipper)   │       │       │       │ (Transporter)│
     └──────────────┘       ▼       ▼       └──────────────┘
                      ┌──────────────────┐
                      │   TruckSuvidha   │
                      │     Platform     │
                      └──────────────────┘
                            │      │
          ┌──────────────┐  │      │  ┌──────────────┐
          │   Razorpay   │◄─┘      └─►│    Admin     │
          │  (Payments)  │            │  (Management)│
          └──────────────┘            └──────────────┘
`

func analysisModels(b *model.Builder) {
	b.Heading("4. Analysis Models", 1)
	b.Heading("4.1 Data Flow Diagrams (DFD)", 2)
	b.Monospace("Level 0 - Context Diagram")
	b.Monospace(contextDiagram)
}

// adminSections pairs each administrative heading with its content.
var adminSections = [][2]string{
	{"5. GitHub Link", "Repository URL: https://github.com/[username]/Truck-Booking"},
	{"6. Deployed Link", "Live Application URL: https://somya-truck-booking.vercel.app"},
	{"7. Client Approval Proof", "[TODO: Insert Proof]"},
	{"8. Client Location Proof", "[TODO: Insert Proof]"},
	{"9. Transaction ID Proof", "[TODO: Insert Proof]"},
	{"10. Email Acknowledgement", "[TODO: Insert Proof]"},
	{"11. GST No.", "GST Number: [TODO]"},
}

func administrative(b *model.Builder) {
	b.PageBreak()
	for _, s := range adminSections {
		b.Heading(s[0], 1)
		b.Text(s[1])
	}
}

func appendices(b *model.Builder) {
	b.PageBreak()
	b.Heading("A. Appendices", 1)

	b.Heading("A.1 Appendix 1 - Technology Stack", 2)
	texts(b,
		"Frontend: React 18.3.1, Vite, TailwindCSS, React Router, TanStack Query.",
		"Backend: Node.js, Express, Mongoose, Passport.js, Razorpay.",
	)

	b.Heading("A.2 Appendix 2 - User Role Permissions", 2)
	b.Text("(See detailed matrix in main document requirements)")
}
