// Package motoron drives Pololu Motoron motor controllers.
//
// A Device owns one bus.Transport and keeps the protocol options (CRC on
// commands, CRC on responses, I2C general call) in sync with the
// controller. Operations are synchronous with at most one request in
// flight, and a Device must not be shared between goroutines without
// external serialization.
//
//	dev, err := motoron.Open(motoron.M2T256, "i2c:///dev/i2c-1?addr=0x10")
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//	dev.SetAllSpeeds(0.5, -0.5)
package motoron
