// utils/firebase.go
package utils

import (
	"context"
	"log"

	"chcrent/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client.
// Push notifications are optional; without credentials the client stays nil
// and status updates are delivered over the order stream only.
func FirebaseInit() {
	path := config.AppConfig.FirebaseServiceAccountFile
	if path == "" {
		log.Println("firebase: no service account configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(path)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FCMClient = client
}
