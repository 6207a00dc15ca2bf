package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	viastatus "github.com/railtools/viastatus"
	"github.com/railtools/viastatus/boardingpass"
	"github.com/railtools/viastatus/config"
	"github.com/railtools/viastatus/formatter"
	"github.com/railtools/viastatus/reservation"
	"github.com/railtools/viastatus/reservia"
	"github.com/railtools/viastatus/station"
	"github.com/railtools/viastatus/trip"
)

var (
	trainArg int
	dateArg  string
	jsonFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "viastatus",
	Short: "Track VIA Rail train trips in real time",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viastatus.InitLogging()
		return config.LoadAppConfig()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the timetable and status of one trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dateArg == "" {
			dateArg = time.Now().Format("2006-01-02")
		}

		client := newClient()
		t := trip.New(client, trainArg, dateArg)
		err := t.Update(cmd.Context())
		if errors.Is(err, reservia.ErrTripIncomplete) {
			t = trip.NewScheduleOnly(client, trainArg, dateArg)
			err = t.Update(cmd.Context())
		}
		if err != nil {
			return err
		}

		if jsonFlag {
			fmt.Println(string(formatter.BuildJSON(t)))
			return nil
		}
		fmt.Println(formatter.Summary(t))
		fmt.Println(formatter.Timetable(t.Schedule()))
		return nil
	},
}

var passCmd = &cobra.Command{
	Use:   "pass <image>",
	Short: "Decode a boarding pass barcode and print the reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stations, err := station.Load()
		if err != nil {
			return err
		}

		bc := config.Config.Barcode
		decoder := boardingpass.NewDecoder(bc.JavaBin, bc.Jars...)
		message, err := decoder.Decode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		pass, err := boardingpass.Parse(message, stations)
		if err != nil {
			return err
		}

		r := reservation.FromBoardingPass(cmd.Context(), pass, newClient(), stations)
		fmt.Printf("Passenger: %s %s\n", pass.FirstName, pass.LastName)
		fmt.Printf("Train #%d from %s to %s, departing %s\n",
			pass.TrainNumber, pass.DepartCode, pass.ArrivalCode,
			pass.DepartTime.Format("2006-01-02 15:04"))
		if r.Trip == nil {
			fmt.Println("Trip status unavailable.")
			return nil
		}
		fmt.Println()
		fmt.Println(formatter.Summary(r.Trip))
		fmt.Println(formatter.Timetable(r.Trip.Schedule()))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the trip status HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := viastatus.NewServer(config.Config, newClient())
		srv.Start()
		srv.HandleGracefulShutdown()
		return nil
	},
}

func newClient() *reservia.Client {
	cfg := config.Config.Reservia
	return reservia.NewClient(cfg.BaseURL,
		time.Duration(cfg.TimeoutMS)*time.Millisecond, uint64(cfg.MaxRetries))
}

func main() {
	statusCmd.Flags().IntVarP(&trainArg, "train", "t", 0, "VIA train number")
	statusCmd.Flags().StringVarP(&dateArg, "date", "d", "", "Service date (YYYY-MM-DD, default today)")
	statusCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the JSON snapshot instead of the table")
	_ = statusCmd.MarkFlagRequired("train")

	rootCmd.AddCommand(statusCmd, passCmd, serveCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
