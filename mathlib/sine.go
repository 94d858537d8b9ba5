package mathlib

import "fmt"

// SinScale is the fixed-point scale of [Sin] and [Cos] results.
const SinScale = 1000

// sinTable holds round(sin(deg)*SinScale) for deg = 0..89.
var sinTable = [90]int16{
	0, 17, 35, 52, 70, 87, 105, 122, 139, 156, // 0-9
	174, 191, 208, 225, 242, 259, 276, 292, 309, 326, // 10-19
	342, 358, 375, 391, 407, 423, 438, 454, 469, 485, // 20-29
	500, 515, 530, 545, 559, 574, 588, 602, 616, 629, // 30-39
	643, 656, 669, 682, 695, 707, 719, 731, 743, 755, // 40-49
	766, 777, 788, 799, 809, 819, 829, 839, 848, 857, // 50-59
	866, 875, 883, 891, 899, 906, 914, 921, 927, 934, // 60-69
	940, 946, 951, 956, 961, 966, 970, 974, 978, 982, // 70-79
	985, 988, 990, 993, 995, 996, 998, 999, 999, 1000, // 80-89
}

// SinTable returns a copy of the first-quadrant table.
func SinTable() [90]int16 {
	return sinTable
}

// Sin returns sin(degrees)*[SinScale] for degrees in [0, 360). Other angles
// return an error wrapping [ErrOutOfRange].
func Sin(degrees int32) (int32, error) {
	if err := validateAngle(degrees); err != nil {
		return 0, err
	}
	angle, sign := reflect(degrees)
	return sign * quarter(angle), nil
}

// Cos returns cos(degrees)*[SinScale] for degrees in [0, 360). Other angles
// return an error wrapping [ErrOutOfRange].
func Cos(degrees int32) (int32, error) {
	if err := validateAngle(degrees); err != nil {
		return 0, err
	}
	angle, sign := reflect((degrees + 90) % 360)
	return sign * quarter(angle), nil
}

func validateAngle(degrees int32) error {
	if degrees < 0 || degrees >= 360 {
		return fmt.Errorf("%w: %d not in [0, 360)", ErrOutOfRange, degrees)
	}
	return nil
}

// reflect folds an angle in [0, 360) onto the first quadrant. The returned
// angle is in [0, 90].
func reflect(degrees int32) (angle, sign int32) {
	switch {
	case degrees >= 270:
		return 360 - degrees, -1
	case degrees >= 180:
		return degrees - 180, -1
	case degrees >= 90:
		return 180 - degrees, 1
	default:
		return degrees, 1
	}
}

// quarter looks up a first-quadrant angle in [0, 90]. 90 is the peak and
// lies one past the table.
func quarter(angle int32) int32 {
	if angle >= int32(len(sinTable)) {
		return SinScale
	}
	return int32(sinTable[angle])
}
