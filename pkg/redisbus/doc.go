// Package redisbus carries notifications over Redis pub/sub.
//
// Publisher is a notification.Sink that publishes each notification as a
// JSON document on a channel. Listener subscribes to the same channel and
// forwards every decoded notification into another sink, which lets a
// separate process log, collect or re-broadcast assertion failures.
//
//	client, err := redisbus.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	pub := redisbus.NewPublisher(client, cfg.Channel)
//	assertion.IsSatisfiedBy(ctx, pub, assertion.ValidCPF(doc, "CPF inválido."))
//
// On the consuming side:
//
//	l := redisbus.NewListener(client, cfg.Channel, notification.NewLogSink(log))
//	err := l.Run(ctx) // blocks until ctx is cancelled
//
// Errors are sentinel values joined with the underlying go-redis error, so
// errors.Is works on both.
package redisbus
