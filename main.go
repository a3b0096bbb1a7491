package main

import (
	"privacyguard/cmd"
	"privacyguard/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.GetLogger().Fatal(err)
	}
}
