package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/client"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

const usage = `Usage: dashctl [-server URL] <command> [arguments]

Commands:
  register  -name NAME -username USER -password PASS
  login     -username USER -password PASS
  logout
  whoami
  jobs post    -pickup ADDR -delivery ADDR -details TEXT -customer NAME -phone PHONE -email EMAIL
  jobs list    [-scope all|mine|assigned] [-status STATUS]
  jobs assign  -id JOB -driver DRIVER -truck TRUCK
  jobs status  -id JOB -to STATUS
  fleet watch  [-interval DURATION]
`

func main() {
	serverURL := flag.String("server", envOr("DASHCTL_SERVER", "http://localhost:5000"), "API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	session, err := newSession(*serverURL)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, session, flag.Args()); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, session *client.Session, args []string) error {
	switch args[0] {
	case "register":
		return cmdRegister(ctx, session, args[1:])
	case "login":
		return cmdLogin(ctx, session, args[1:])
	case "logout":
		return session.Logout(ctx)
	case "whoami":
		return cmdWhoami(ctx, session)
	case "jobs":
		if len(args) < 2 {
			return fmt.Errorf("jobs: missing subcommand")
		}
		switch args[1] {
		case "post":
			return cmdJobsPost(ctx, session, args[2:])
		case "list":
			return cmdJobsList(ctx, session, args[2:])
		case "assign":
			return cmdJobsAssign(ctx, session, args[2:])
		case "status":
			return cmdJobsStatus(ctx, session, args[2:])
		}
		return fmt.Errorf("jobs: unknown subcommand %q", args[1])
	case "fleet":
		if len(args) < 2 || args[1] != "watch" {
			return fmt.Errorf("fleet: unknown subcommand")
		}
		return cmdFleetWatch(ctx, session, args[2:])
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func newSession(serverURL string) (*client.Session, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	store := client.NewCredStore(filepath.Join(home, ".angkutin", "credentials.json"))
	return client.NewSession(serverURL, store)
}

func cmdRegister(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if err := session.Register(ctx, *name, *username, *password); err != nil {
		return err
	}
	fmt.Println("account created, you can log in now")
	return nil
}

func cmdLogin(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	identity, err := session.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", identity.Username, identity.Role)
	return nil
}

func cmdWhoami(ctx context.Context, session *client.Session) error {
	identity, err := session.Restore(ctx)
	if err != nil {
		return err
	}
	if identity == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s (%s)\n", identity.Username, identity.Role)
	return nil
}

func cmdJobsPost(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("jobs post", flag.ExitOnError)
	pickup := fs.String("pickup", "", "pickup address")
	delivery := fs.String("delivery", "", "delivery address")
	details := fs.String("details", "", "package details")
	customer := fs.String("customer", "", "customer name")
	phone := fs.String("phone", "", "contact phone")
	email := fs.String("email", "", "contact email")
	fs.Parse(args)

	if err := restore(ctx, session); err != nil {
		return err
	}

	job, err := session.CreateJob(ctx, &models.CreateJobRequest{
		Pickup:         *pickup,
		Delivery:       *delivery,
		PackageDetails: *details,
		CustomerName:   *customer,
		Phone:          *phone,
		Email:          *email,
	})
	if err != nil {
		return err
	}
	fmt.Printf("job %s created (%s)\n", job.ID, job.Status)
	return nil
}

func cmdJobsList(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("jobs list", flag.ExitOnError)
	scope := fs.String("scope", "all", "all, mine or assigned")
	status := fs.String("status", "", "filter by status")
	fs.Parse(args)

	if err := restore(ctx, session); err != nil {
		return err
	}

	jobs, err := session.ListJobs(ctx, client.JobScope(*scope), models.JobStatus(*status))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPICKUP\tDELIVERY\tDRIVER")
	for _, job := range jobs {
		driver := "-"
		if job.Driver != nil {
			driver = job.Driver.Username
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			job.ID, job.Status, job.Pickup, job.Delivery, driver)
	}
	return w.Flush()
}

func cmdJobsAssign(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("jobs assign", flag.ExitOnError)
	jobID := fs.String("id", "", "job id")
	driverID := fs.String("driver", "", "driver id")
	truckID := fs.String("truck", "", "truck id")
	fs.Parse(args)

	if err := restore(ctx, session); err != nil {
		return err
	}

	id, err := uuid.Parse(*jobID)
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}
	driver, err := uuid.Parse(*driverID)
	if err != nil {
		return fmt.Errorf("invalid driver id: %w", err)
	}
	truck, err := uuid.Parse(*truckID)
	if err != nil {
		return fmt.Errorf("invalid truck id: %w", err)
	}

	job, err := session.AssignJob(ctx, id, &models.AssignJobRequest{
		DriverID: driver, TruckID: truck,
	})
	if err != nil {
		return err
	}
	fmt.Printf("job %s assigned to %s with truck %s\n",
		job.ID, job.Driver.Username, job.Truck.PlateNumber)
	return nil
}

func cmdJobsStatus(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("jobs status", flag.ExitOnError)
	jobID := fs.String("id", "", "job id")
	target := fs.String("to", "", "target status")
	fs.Parse(args)

	if err := restore(ctx, session); err != nil {
		return err
	}

	id, err := uuid.Parse(*jobID)
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}

	job, err := session.UpdateJobStatus(ctx, id, models.JobStatus(*target))
	if err != nil {
		return err
	}
	fmt.Printf("job %s is now %s\n", job.ID, job.Status)
	return nil
}

func cmdFleetWatch(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("fleet watch", flag.ExitOnError)
	interval := fs.Duration("interval", 15*time.Second, "poll interval")
	fs.Parse(args)

	if err := restore(ctx, session); err != nil {
		return err
	}

	for snapshot := range session.WatchFleet(ctx, *interval) {
		if snapshot.Err != nil {
			fmt.Fprintf(os.Stderr, "fetch failed: %v\n", snapshot.Err)
			continue
		}
		fmt.Printf("--- %s ---\n", time.Now().Format(time.Kitchen))
		for _, loc := range snapshot.Locations {
			state := "offline"
			if loc.Online {
				state = "online"
			}
			fmt.Printf("%-20s %9.5f %10.5f  %s\n",
				loc.Username, loc.Latitude, loc.Longitude, state)
		}
	}
	return nil
}

func restore(ctx context.Context, session *client.Session) error {
	identity, err := session.Restore(ctx)
	if err != nil {
		return err
	}
	if identity == nil {
		return client.ErrUnauthenticated
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "dashctl: %v\n", err)
	os.Exit(1)
}
