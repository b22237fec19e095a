package shadow

// presetSources is the built-in shadow library.
var presetSources = []PresetSource{
	{Name: "0", Value: "rgba(149, 157, 165, 0.2) 0px 8px 24px"},
	{Name: "1", Value: "rgba(100, 100, 111, 0.2) 0px 7px 29px 0px"},
	{Name: "2", Value: "rgba(0, 0, 0, 0.15) 1.95px 1.95px 2.6px"},
	{Name: "3", Value: "rgba(0, 0, 0, 0.35) 0px 5px 15px"},
	{Name: "4", Value: "rgba(0, 0, 0, 0.16) 0px 1px 4px", Author: "3drops"},
	{Name: "5", Value: "rgba(0, 0, 0, 0.24) 0px 3px 8px"},
	{Name: "6", Value: "rgba(99, 99, 99, 0.2) 0px 2px 8px 0px"},
	{Name: "7", Value: "rgba(0, 0, 0, 0.16) 0px 1px 4px, rgb(51, 51, 51) 0px 0px 0px 3px"},
	{Name: "8", Value: "rgba(0, 0, 0, 0.02) 0px 1px 3px 0px, rgba(27, 31, 35, 0.15) 0px 0px 0px 1px"},
	{Name: "9", Value: "rgba(0, 0, 0, 0.1) 0px 4px 12px", Author: "Sketch"},
	{Name: "10", Value: "rgba(0, 0, 0, 0.25) 0px 54px 55px, rgba(0, 0, 0, 0.12) 0px -12px 30px, rgba(0, 0, 0, 0.12) 0px 4px 6px, rgba(0, 0, 0, 0.17) 0px 12px 13px, rgba(0, 0, 0, 0.09) 0px -3px 5px"},
	{Name: "11", Value: "rgba(0, 0, 0, 0.05) 0px 6px 24px 0px, rgba(0, 0, 0, 0.08) 0px 0px 0px 1px", Author: "Sketch"},
	{Name: "12", Value: "rgba(0, 0, 0, 0.16) 0px 10px 36px 0px, rgba(0, 0, 0, 0.06) 0px 0px 0px 1px", Author: "Sketch"},
	{Name: "13", Value: "rgba(17, 12, 46, 0.15) 0px 48px 100px 0px"},
	{Name: "14", Value: "rgba(50, 50, 93, 0.25) 0px 50px 100px -20px, rgba(0, 0, 0, 0.3) 0px 30px 60px -30px, rgba(10, 37, 64, 0.35) 0px -2px 6px 0px inset", Author: "Stripe"},
	{Name: "15", Value: "rgba(255, 255, 255, 0.1) 0px 1px 1px 0px inset, rgba(50, 50, 93, 0.25) 0px 50px 100px -20px, rgba(0, 0, 0, 0.3) 0px 30px 60px -30px", Author: "Stripe"},
	{Name: "16", Value: "rgba(50, 50, 93, 0.25) 0px 50px 100px -20px, rgba(0, 0, 0, 0.3) 0px 30px 60px -30px", Author: "Stripe"},
	{Name: "17", Value: "rgba(50, 50, 93, 0.25) 0px 50px 100px -20px, rgba(0, 0, 0, 0.3) 0px 30px 60px -30px", Author: "Stripe"},
	{Name: "18", Value: "rgba(50, 50, 93, 0.25) 0px 13px 27px -5px, rgba(0, 0, 0, 0.3) 0px 8px 16px -8px", Author: "Stripe"},
	{Name: "19", Value: "rgba(50, 50, 93, 0.25) 0px 2px 5px -1px, rgba(0, 0, 0, 0.3) 0px 1px 3px -1px", Author: "Stripe"},
	{Name: "20", Value: "rgb(38, 57, 77) 0px 20px 30px -10px", Author: "Stripe"},
	{Name: "21", Value: "rgba(6, 24, 44, 0.4) 0px 0px 0px 2px, rgba(6, 24, 44, 0.65) 0px 4px 6px -1px, rgba(255, 255, 255, 0.08) 0px 1px 0px inset", Author: "Stripe"},
	{Name: "22", Value: "rgba(50, 50, 93, 0.25) 0px 6px 12px -2px, rgba(0, 0, 0, 0.3) 0px 3px 7px -3px"},
	{Name: "23", Value: "rgba(50, 50, 93, 0.25) 0px 13px 27px -5px, rgba(0, 0, 0, 0.3) 0px 8px 16px -8px"},
	{Name: "24", Value: "rgba(50, 50, 93, 0.25) 0px 30px 60px -12px, rgba(0, 0, 0, 0.3) 0px 18px 36px -18px"},
	{Name: "25", Value: "rgba(50, 50, 93, 0.25) 0px 30px 60px -12px inset, rgba(0, 0, 0, 0.3) 0px 18px 36px -18px inset"},
	{Name: "26", Value: "rgba(50, 50, 93, 0.25) 0px 50px 100px -20px, rgba(0, 0, 0, 0.3) 0px 30px 60px -30px"},
	{Name: "27", Value: "rgba(0, 0, 0, 0.12) 0px 1px 3px, rgba(0, 0, 0, 0.24) 0px 1px 2px", Author: "Material"},
	{Name: "28", Value: "rgba(0, 0, 0, 0.16) 0px 3px 6px, rgba(0, 0, 0, 0.23) 0px 3px 6px", Author: "Material"},
	{Name: "29", Value: "rgba(0, 0, 0, 0.19) 0px 10px 20px, rgba(0, 0, 0, 0.23) 0px 6px 6px", Author: "Material"},
	{Name: "30", Value: "rgba(0, 0, 0, 0.25) 0px 14px 28px, rgba(0, 0, 0, 0.22) 0px 10px 10px", Author: "Material"},
	{Name: "31", Value: "rgba(0, 0, 0, 0.3) 0px 19px 38px, rgba(0, 0, 0, 0.22) 0px 15px 12px", Author: "Material"},
	{Name: "32", Value: "rgba(60, 64, 67, 0.3) 0px 1px 2px 0px, rgba(60, 64, 67, 0.15) 0px 2px 6px 2px", Author: "Material"},
	{Name: "33", Value: "rgba(60, 64, 67, 0.3) 0px 1px 2px 0px, rgba(60, 64, 67, 0.15) 0px 1px 3px 1px", Author: "Material"},
	{Name: "34", Value: "rgba(0, 0, 0, 0.05) 0px 0px 0px 1px", Author: "Tailwind CSS"},
	{Name: "35", Value: "rgba(0, 0, 0, 0.05) 0px 1px 2px 0px", Author: "Tailwind CSS"},
	{Name: "36", Value: "rgba(0, 0, 0, 0.1) 0px 1px 3px 0px, rgba(0, 0, 0, 0.06) 0px 1px 2px 0px", Author: "Tailwind CSS"},
	{Name: "37", Value: "rgba(0, 0, 0, 0.1) 0px 4px 6px -1px, rgba(0, 0, 0, 0.06) 0px 2px 4px -1px", Author: "Tailwind CSS"},
	{Name: "38", Value: "rgba(0, 0, 0, 0.1) 0px 10px 15px -3px, rgba(0, 0, 0, 0.05) 0px 4px 6px -2px", Author: "Tailwind CSS"},
	{Name: "39", Value: "rgba(0, 0, 0, 0.1) 0px 20px 25px -5px, rgba(0, 0, 0, 0.04) 0px 10px 10px -5px", Author: "Tailwind CSS"},
	{Name: "40", Value: "rgba(0, 0, 0, 0.25) 0px 25px 50px -12px", Author: "Tailwind CSS"},
	{Name: "41", Value: "rgba(0, 0, 0, 0.06) 0px 2px 4px 0px inset", Author: "Tailwind CSS"},
	{Name: "42", Value: "rgba(0, 0, 0, 0.1) 0px 0px 5px 0px, rgba(0, 0, 0, 0.1) 0px 0px 1px 0px"},
	{Name: "43", Value: "rgba(0, 0, 0, 0.07) 0px 1px 2px, rgba(0, 0, 0, 0.07) 0px 2px 4px, rgba(0, 0, 0, 0.07) 0px 4px 8px, rgba(0, 0, 0, 0.07) 0px 8px 16px, rgba(0, 0, 0, 0.07) 0px 16px 32px, rgba(0, 0, 0, 0.07) 0px 32px 64px", Author: "Tobias Ahlin"},
	{Name: "44", Value: "rgba(0, 0, 0, 0.09) 0px 2px 1px, rgba(0, 0, 0, 0.09) 0px 4px 2px, rgba(0, 0, 0, 0.09) 0px 8px 4px, rgba(0, 0, 0, 0.09) 0px 16px 8px, rgba(0, 0, 0, 0.09) 0px 32px 16px", Author: "Tobias Ahlin"},
	{Name: "45", Value: "rgba(0, 0, 0, 0.2) 0px 18px 50px -10px", Author: "feedback.fish"},
	{Name: "46", Value: "rgba(0, 0, 0, 0.1) 0px 10px 50px"},
	{Name: "47", Value: "rgba(0, 0, 0, 0.04) 0px 3px 5px"},
	{Name: "48", Value: "rgba(240, 46, 170, 0.4) -5px 5px, rgba(240, 46, 170, 0.3) -10px 10px, rgba(240, 46, 170, 0.2) -15px 15px, rgba(240, 46, 170, 0.1) -20px 20px, rgba(240, 46, 170, 0.05) -25px 25px", Author: "Alligator"},
	{Name: "49", Value: "rgba(240, 46, 170, 0.4) 0px 5px, rgba(240, 46, 170, 0.3) 0px 10px, rgba(240, 46, 170, 0.2) 0px 15px, rgba(240, 46, 170, 0.1) 0px 20px, rgba(240, 46, 170, 0.05) 0px 25px", Author: "Alligator"},
	{Name: "50", Value: "rgba(240, 46, 170, 0.4) 5px 5px, rgba(240, 46, 170, 0.3) 10px 10px, rgba(240, 46, 170, 0.2) 15px 15px, rgba(240, 46, 170, 0.1) 20px 20px, rgba(240, 46, 170, 0.05) 25px 25px", Author: "Alligator"},
	{Name: "51", Value: "rgba(0, 0, 0, 0.07) 0px 1px 1px, rgba(0, 0, 0, 0.07) 0px 2px 2px, rgba(0, 0, 0, 0.07) 0px 4px 4px, rgba(0, 0, 0, 0.07) 0px 8px 8px, rgba(0, 0, 0, 0.07) 0px 16px 16px"},
	{Name: "52", Value: "rgba(67, 71, 85, 0.27) 0px 0px 0.25em, rgba(90, 125, 188, 0.05) 0px 0.25em 1em", Author: "pqina.nl/doka"},
	{Name: "53", Value: "rgba(0, 0, 0, 0.1) 0px 1px 2px 0px"},
	{Name: "54", Value: "rgba(27, 31, 35, 0.04) 0px 1px 0px, rgba(255, 255, 255, 0.25) 0px 1px 0px inset", Author: "Github"},
	{Name: "55", Value: "rgba(3, 102, 214, 0.3) 0px 0px 0px 3px", Author: "Github"},
	{Name: "56", Value: "rgba(14, 30, 37, 0.12) 0px 2px 4px 0px, rgba(14, 30, 37, 0.32) 0px 2px 16px 0px"},
	{Name: "57", Value: "rgba(0, 0, 0, 0.2) 0px 12px 28px 0px, rgba(0, 0, 0, 0.1) 0px 2px 4px 0px, rgba(255, 255, 255, 0.05) 0px 0px 0px 1px inset", Author: "Facebook"},
	{Name: "58", Value: "rgba(0, 0, 0, 0.15) 0px 5px 15px 0px", Author: "Shopify"},
	{Name: "59", Value: "rgba(33, 35, 38, 0.1) 0px 10px 10px -10px", Author: "Shopify"},
	{Name: "60", Value: "rgb(0, 0, 255) 0px 0px 0px 2px inset, rgb(255, 255, 255) 10px -10px 0px -3px, rgb(31, 193, 27) 10px -10px, rgb(255, 255, 255) 20px -20px 0px -3px, rgb(255, 217, 19) 20px -20px, rgb(255, 255, 255) 30px -30px 0px -3px, rgb(255, 156, 85) 30px -30px, rgb(255, 255, 255) 40px -40px 0px -3px, rgb(255, 85, 85) 40px -40px", Author: "Fossheim"},
	{Name: "61", Value: "rgb(85, 91, 255) 0px 0px 0px 3px, rgb(31, 193, 27) 0px 0px 0px 6px, rgb(255, 217, 19) 0px 0px 0px 9px, rgb(255, 156, 85) 0px 0px 0px 12px, rgb(255, 85, 85) 0px 0px 0px 15px", Author: "Fossheim"},
	{Name: "62", Value: "rgb(204, 219, 232) 3px 3px 6px 0px inset, rgba(255, 255, 255, 0.5) -3px -3px 6px 1px inset", Author: "boxshadows.com"},
	{Name: "63", Value: "rgba(136, 165, 191, 0.48) 6px 2px 16px 0px, rgba(255, 255, 255, 0.8) -6px -2px 16px 0px", Author: "boxshadows.com"},
	{Name: "64", Value: "rgba(17, 17, 26, 0.1) 0px 1px 0px", Author: "box-shadows.co"},
	{Name: "65", Value: "rgba(17, 17, 26, 0.05) 0px 1px 0px, rgba(17, 17, 26, 0.1) 0px 0px 8px", Author: "box-shadows.co"},
	{Name: "66", Value: "rgba(17, 17, 26, 0.1) 0px 0px 16px", Author: "box-shadows.co"},
	{Name: "67", Value: "rgba(17, 17, 26, 0.05) 0px 4px 16px, rgba(17, 17, 26, 0.05) 0px 8px 32px", Author: "box-shadows.co"},
	{Name: "68", Value: "rgba(17, 17, 26, 0.1) 0px 4px 16px, rgba(17, 17, 26, 0.05) 0px 8px 32px", Author: "box-shadows.co"},
	{Name: "69", Value: "rgba(17, 17, 26, 0.1) 0px 1px 0px, rgba(17, 17, 26, 0.1) 0px 8px 24px, rgba(17, 17, 26, 0.1) 0px 16px 48px", Author: "box-shadows.co"},
	{Name: "70", Value: "rgba(17, 17, 26, 0.1) 0px 4px 16px, rgba(17, 17, 26, 0.1) 0px 8px 24px, rgba(17, 17, 26, 0.1) 0px 16px 56px", Author: "box-shadows.co"},
	{Name: "71", Value: "rgba(17, 17, 26, 0.1) 0px 8px 24px, rgba(17, 17, 26, 0.1) 0px 16px 56px, rgba(17, 17, 26, 0.1) 0px 24px 80px", Author: "box-shadows.co"},
	{Name: "72", Value: "rgba(50, 50, 105, 0.15) 0px 2px 5px 0px, rgba(0, 0, 0, 0.05) 0px 1px 1px 0px", Author: "10er.app"},
	{Name: "73", Value: "rgba(0, 0, 0, 0.15) 0px 15px 25px, rgba(0, 0, 0, 0.05) 0px 5px 10px", Author: "wip.chat"},
	{Name: "74", Value: "rgba(0, 0, 0, 0.15) 2.4px 2.4px 3.2px"},
	{Name: "75", Value: "rgba(0, 0, 0, 0.15) 0px 3px 3px 0px", Author: "Airbnb"},
	{Name: "76", Value: "rgba(0, 0, 0, 0.08) 0px 4px 12px", Author: "Airbnb"},
	{Name: "77", Value: "rgba(0, 0, 0, 0.15) 0px 2px 8px", Author: "Airbnb"},
	{Name: "78", Value: "rgba(0, 0, 0, 0.18) 0px 2px 4px", Author: "Airbnb"},
	{Name: "79", Value: "rgba(0, 0, 0, 0.1) -4px 9px 25px -6px", Author: "ls.graphics"},
	{Name: "80", Value: "rgba(0, 0, 0, 0.2) 0px 60px 40px -7px", Author: "ls.graphics"},
	{Name: "81", Value: "rgba(0, 0, 0, 0.4) 0px 30px 90px", Author: "Lonely Planet"},
	{Name: "82", Value: "rgba(0, 0, 0, 0.56) 0px 22px 70px 4px", Author: "Mac"},
	{Name: "83", Value: "rgba(0, 0, 0, 0.2) 0px 20px 30px", Author: "Mac"},
	{Name: "84", Value: "rgba(255, 255, 255, 0.2) 0px 0px 0px 1px inset, rgba(0, 0, 0, 0.9) 0px 0px 0px 1px", Author: "Mac"},
	{Name: "85", Value: "rgba(0, 0, 0, 0.25) 0px 0.0625em 0.0625em, rgba(0, 0, 0, 0.25) 0px 0.125em 0.5em, rgba(255, 255, 255, 0.1) 0px 0px 0px 1px inset", Author: "pqina.nl/doka"},
	{Name: "86", Value: "rgba(0, 0, 0, 0.09) 0px 3px 12px", Author: "Typedream"},
	{Name: "87", Value: "rgba(0, 0, 0, 0.17) 0px -23px 25px 0px inset, rgba(0, 0, 0, 0.15) 0px -36px 30px 0px inset, rgba(0, 0, 0, 0.1) 0px -79px 40px 0px inset, rgba(0, 0, 0, 0.06) 0px 2px 1px, rgba(0, 0, 0, 0.09) 0px 4px 2px, rgba(0, 0, 0, 0.09) 0px 8px 4px, rgba(0, 0, 0, 0.09) 0px 16px 8px, rgba(0, 0, 0, 0.09) 0px 32px 16px"},
	{Name: "88", Value: "rgba(0, 0, 0, 0.45) 0px 25px 20px -20px"},
	{Name: "89", Value: "rgba(0, 0, 0, 0.4) 0px 2px 4px, rgba(0, 0, 0, 0.3) 0px 7px 13px -3px, rgba(0, 0, 0, 0.2) 0px -3px 0px inset"},
	{Name: "90", Value: "rgba(0, 0, 0, 0.05) 0px 0px 0px 1px, rgb(209, 213, 219) 0px 0px 0px 1px inset"},
	{Name: "91", Value: "rgba(0, 0, 0, 0.35) 0px -50px 36px -28px inset"},
	{Name: "92", Value: "rgba(9, 30, 66, 0.25) 0px 1px 1px, rgba(9, 30, 66, 0.13) 0px 0px 1px 1px", Author: "Trello"},
	{Name: "93", Value: "rgba(9, 30, 66, 0.25) 0px 4px 8px -2px, rgba(9, 30, 66, 0.08) 0px 0px 0px 1px", Author: "Trello"},
	{Name: "94", Value: "rgba(14, 63, 126, 0.04) 0px 0px 0px 1px, rgba(42, 51, 69, 0.04) 0px 1px 1px -0.5px, rgba(42, 51, 70, 0.04) 0px 3px 3px -1.5px, rgba(42, 51, 70, 0.04) 0px 6px 6px -3px, rgba(14, 63, 126, 0.04) 0px 12px 12px -6px, rgba(14, 63, 126, 0.04) 0px 24px 24px -12px", Author: "Antimetal"},
	{Name: "95", Value: "rgba(14, 63, 126, 0.06) 0px 0px 0px 1px, rgba(42, 51, 70, 0.03) 0px 1px 1px -0.5px, rgba(42, 51, 70, 0.04) 0px 2px 2px -1px, rgba(42, 51, 70, 0.04) 0px 3px 3px -1.5px, rgba(42, 51, 70, 0.03) 0px 5px 5px -2.5px, rgba(42, 51, 70, 0.03) 0px 10px 10px -5px, rgba(42, 51, 70, 0.03) 0px 24px 24px -8px", Author: "Antimetal"},
}
