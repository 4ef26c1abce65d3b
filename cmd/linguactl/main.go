// linguactl is the command-line back office for the LinguaNest site. It
// drives the same API the web admin uses, with the session persisted under
// the user config dir.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/linguanest/lingua-back/internal/app"
	"github.com/linguanest/lingua-back/internal/models"
	"github.com/linguanest/lingua-back/pkg/client"
)

const usage = `usage: linguactl <command> [args]

  login -u <username> -p <password>   authenticate and store the session
  logout                              clear the stored session
  whoami                              show the logged-in admin

  courses                             list courses
  teachers                            list teachers
  bookings                            list bookings
  book-status <id> <status>           set a booking status
  export [-o <file>]                  export bookings to xlsx

  testimonials [-pending]             list testimonials
  approve <id>                        approve a testimonial
  rm-testimonial <id>                 delete a testimonial

  messages                            list contact messages
  mark-read <id>                      mark a message read
  rm-message <id>                     delete a message
`

func main() {
	_ = godotenv.Load()

	logger := app.NewLogger(os.Getenv("ENVIRONMENT"))
	defer logger.Sync()

	baseURL := os.Getenv("LINGUA_API_URL")
	store := client.NewFileStore(sessionPath())
	sess := client.NewSession(baseURL, store, logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := sess.Resolve(ctx); err != nil {
		fatal(err)
	}

	cmd, args := os.Args[1], os.Args[2:]
	api := sess.Client()

	switch cmd {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		username := fs.String("u", "", "admin username")
		password := fs.String("p", "", "admin password")
		fs.Parse(args)
		if *username == "" || *password == "" {
			fatal(fmt.Errorf("login requires -u and -p"))
		}
		if err := sess.Login(ctx, *username, *password); err != nil {
			fatal(err)
		}
		fmt.Printf("logged in as %s\n", sess.User().Username)

	case "logout":
		sess.Logout()
		fmt.Println("logged out")

	case "whoami":
		if !sess.IsAuthenticated() {
			fatal(fmt.Errorf("not logged in"))
		}
		user := sess.User()
		fmt.Printf("%s <%s> (%s)\n", user.Username, user.Email, user.Role)

	case "courses":
		courses, err := fetchAndWait(ctx, api.Courses)
		if err != nil {
			fatal(err)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tTITLE\tLANGUAGE\tLEVEL\tSLOTS\tACTIVE")
		for _, c := range *courses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%v\n",
				c.ID, c.Title, c.Language, c.Level, c.AvailableSlots, c.MaxStudents, c.IsActive)
		}
		w.Flush()

	case "teachers":
		teachers, err := fetchAndWait(ctx, api.Teachers)
		if err != nil {
			fatal(err)
		}
		w := newTable()
		fmt.Fprintln(w, "NAME\tRATING\tEXPERIENCE\tSPECIALIZATIONS")
		for _, t := range *teachers {
			fmt.Fprintf(w, "%s\t%.1f\t%dy\t%v\n", t.Name, t.Rating, t.Experience, []string(t.Specializations))
		}
		w.Flush()

	case "bookings":
		bookings, err := fetchAndWait(ctx, api.Bookings)
		if err != nil {
			fatal(err)
		}
		printBookings(*bookings)

	case "book-status":
		if len(args) != 2 {
			fatal(fmt.Errorf("book-status requires <id> <status>"))
		}
		booking, err := api.UpdateBookingStatus(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("booking %s -> %s\n", booking.ID, booking.Status)

	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		out := fs.String("o", "bookings.xlsx", "output file")
		fs.Parse(args)
		f, err := os.Create(*out)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		if err := api.ExportBookings(ctx, f); err != nil {
			fatal(err)
		}
		fmt.Printf("exported bookings to %s\n", *out)

	case "testimonials":
		fs := flag.NewFlagSet("testimonials", flag.ExitOnError)
		pending := fs.Bool("pending", false, "list unapproved testimonials")
		fs.Parse(args)
		produce := api.Testimonials
		if *pending {
			produce = api.PendingTestimonials
		}
		testimonials, err := fetchAndWait(ctx, produce)
		if err != nil {
			fatal(err)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tSTUDENT\tCOURSE\tRATING\tAPPROVED")
		for _, t := range *testimonials {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n", t.ID, t.StudentName, t.Course, t.Rating, t.IsApproved)
		}
		w.Flush()

	case "approve":
		if len(args) != 1 {
			fatal(fmt.Errorf("approve requires <id>"))
		}
		testimonial, err := api.ApproveTestimonial(ctx, args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("approved testimonial by %s\n", testimonial.StudentName)

	case "rm-testimonial":
		if len(args) != 1 {
			fatal(fmt.Errorf("rm-testimonial requires <id>"))
		}
		if err := api.DeleteTestimonial(ctx, args[0]); err != nil {
			fatal(err)
		}
		fmt.Println("testimonial deleted")

	case "messages":
		messages, err := fetchAndWait(ctx, api.Messages)
		if err != nil {
			fatal(err)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tFROM\tSUBJECT\tREAD")
		for _, m := range *messages {
			fmt.Fprintf(w, "%s\t%s <%s>\t%s\t%v\n", m.ID, m.Name, m.Email, m.Subject, m.IsRead)
		}
		w.Flush()

	case "mark-read":
		if len(args) != 1 {
			fatal(fmt.Errorf("mark-read requires <id>"))
		}
		if _, err := api.MarkMessageRead(ctx, args[0]); err != nil {
			fatal(err)
		}
		fmt.Println("message marked read")

	case "rm-message":
		if len(args) != 1 {
			fatal(fmt.Errorf("rm-message requires <id>"))
		}
		if err := api.DeleteMessage(ctx, args[0]); err != nil {
			fatal(err)
		}
		fmt.Println("message deleted")

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// fetchAndWait runs one load through a Fetcher and blocks until it settles.
func fetchAndWait[T any](ctx context.Context, produce client.Producer[T]) (*T, error) {
	f := client.NewFetcher(produce)
	defer f.Close()

	done := make(chan client.State[T], 1)
	f.OnChange(func(st client.State[T]) {
		if !st.Loading {
			done <- st
		}
	})
	f.Reload(ctx)

	st := <-done
	return st.Data, st.Err
}

func printBookings(bookings []models.Booking) {
	w := newTable()
	fmt.Fprintln(w, "ID\tSTUDENT\tCOURSE\tDATE\tTIME\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.StudentName, b.CourseTitle, b.Date, b.Time, b.Status)
	}
	w.Flush()
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func sessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "linguactl", "session.json")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
