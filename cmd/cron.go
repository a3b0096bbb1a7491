package cmd

import (
	l "log"

	"privacyguard/jobs"

	"github.com/jasonlvhit/gocron"
	"github.com/spf13/cobra"
)

var cronCmd = &cobra.Command{
	Use:     "cron",
	Aliases: []string{"jobs", "c"},
	Short:   "Run background tasks e.g dispatching due follow-ups",
	Run: func(cmd *cobra.Command, args []string) {
		runTasks()
	},
}

func init() {
	rootCmd.AddCommand(cronCmd)
}

// do the thing
func runTasks() {

	l.Printf("Starting background jobs....\n")

	var cjob = jobs.NewCronJob()

	if err := gocron.Every(1).Minute().Do(cjob.DispatchDue); err != nil {
		log.Errorf("cannot prepare follow-up dispatch job : %v", err)
	}

	if err := gocron.Every(30).Minutes().Do(cjob.ExpireStale); err != nil {
		log.Errorf("cannot prepare stale cleanup job : %v", err)
	}

	if err := gocron.Every(30).Minutes().Do(cjob.PurgeSessions); err != nil {
		log.Errorf("cannot prepare session purge job : %v", err)
	}

	//run scheduler
	<-gocron.Start()
}
