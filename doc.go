// Package icontact provides a Go client SDK for the iContact
// email-marketing API, covering account, list, contact, subscription,
// message and send management.
//
// Every request is authenticated with the application key, username and
// password headers; there is no session or token exchange. Responses
// are JSON and are exposed as schema-less [Result] values mirroring
// whatever the API returned; the message-statistics endpoints answer in
// XML and are parsed by the stats subpackage.
//
// Basic usage:
//
//	client, err := icontact.New(appID, username, password)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Look up the first mailing list; account and client-folder ids
//	// are discovered and cached automatically.
//	list, err := client.FirstList(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a contact and subscribe it.
//	contacts, err := client.CreateOrUpdateContacts(ctx, []map[string]any{
//	    {"email": "jane@example.com", "firstName": "Jane"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = client.CreateOrUpdateSubscriptions(ctx, []map[string]any{{
//	    "contactId": contacts[0].String("contactId"),
//	    "listId":    list.String("listId"),
//	    "status":    icontact.StatusNormal,
//	}})
//
// A Client is synchronous and keeps unsynchronized state (the cached
// ids and the retry counter); use one client per goroutine or add your
// own locking.
package icontact
