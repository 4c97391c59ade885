package tint

// Reflectance data for paint-like mixing, sampled every 10nm from 380
// to 750nm. The seven basis spectra are least-slope reflectance curves
// recovered for the sRGB primaries and secondaries plus white;
// lumWeights is the D65-weighted CIE Y observer row and the
// reflToLinear rows project a reflectance curve back onto linear sRGB.

const spectralBands = 38

var basisWhite = [spectralBands]float64{
	0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900,
	0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900,
	0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900,
	0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900,
	0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900,
	0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900, 0.99999900,
	0.99999900, 0.99999900,
}

var basisCyan = [spectralBands]float64{
	0.96852944, 0.96853791, 0.96857500, 0.96875724, 0.96941328, 0.97142986,
	0.97541725, 0.98074732, 0.98582109, 0.98972322, 0.99239230, 0.99411001,
	0.99518285, 0.99577539, 0.99594522, 0.99565252, 0.99466469, 0.99232212,
	0.98643357, 0.96839639, 0.89256620, 0.53774874, 0.15349879, 0.05696941,
	0.03120372, 0.02200842, 0.01798495, 0.01610038, 0.01517635, 0.01472653,
	0.01451303, 0.01441503, 0.01436614, 0.01434226, 0.01433153, 0.01432624,
	0.01432402, 0.01432338,
}

var basisMagenta = [spectralBands]float64{
	0.99047837, 0.99047629, 0.99046715, 0.99042169, 0.99025137, 0.98965809,
	0.98803836, 0.98395295, 0.97336387, 0.94053817, 0.81389030, 0.42840528,
	0.13786409, 0.05381785, 0.02936242, 0.02145867, 0.02028936, 0.02432061,
	0.03748987, 0.07645733, 0.20571905, 0.54011926, 0.81452063, 0.91200223,
	0.94579238, 0.95950458, 0.96589869, 0.96899447, 0.97053838, 0.97129649,
	0.97165782, 0.97182398, 0.97190696, 0.97194752, 0.97196575, 0.97197472,
	0.97197850, 0.97197959,
}

var basisYellow = [spectralBands]float64{
	0.02093979, 0.02094391, 0.02096200, 0.02105197, 0.02138869, 0.02255581,
	0.02569548, 0.03333926, 0.05172685, 0.10057130, 0.23931048, 0.53601917,
	0.79891544, 0.91201381, 0.95407094, 0.97137715, 0.97936505, 0.98339386,
	0.98543577, 0.98637150, 0.98663396, 0.98646913, 0.98608281, 0.98562177,
	0.98519914, 0.98487365, 0.98464964, 0.98451310, 0.98443578, 0.98439517,
	0.98437510, 0.98436571, 0.98436098, 0.98435867, 0.98435762, 0.98435711,
	0.98435689, 0.98435683,
}

var basisRed = [spectralBands]float64{
	0.03147056, 0.03146209, 0.03142500, 0.03124276, 0.03058672, 0.02857014,
	0.02458275, 0.01925268, 0.01417891, 0.01027678, 0.00760770, 0.00588999,
	0.00481715, 0.00422461, 0.00405478, 0.00434748, 0.00533531, 0.00767788,
	0.01356643, 0.03160361, 0.10743380, 0.46225126, 0.84650121, 0.94303059,
	0.96879628, 0.97799158, 0.98201505, 0.98389962, 0.98482365, 0.98527347,
	0.98548697, 0.98558497, 0.98563386, 0.98565774, 0.98566847, 0.98567376,
	0.98567598, 0.98567662,
}

var basisGreen = [spectralBands]float64{
	0.00952163, 0.00952371, 0.00953285, 0.00957831, 0.00974863, 0.01034191,
	0.01196164, 0.01604705, 0.02663613, 0.05946183, 0.18610970, 0.57159472,
	0.86213591, 0.94618215, 0.97063758, 0.97854133, 0.97971064, 0.97567939,
	0.96251013, 0.92354267, 0.79428095, 0.45988074, 0.18547937, 0.08799777,
	0.05420762, 0.04049542, 0.03410131, 0.03100553, 0.02946162, 0.02870351,
	0.02834218, 0.02817602, 0.02809304, 0.02805248, 0.02803425, 0.02802528,
	0.02802150, 0.02802041,
}

var basisBlue = [spectralBands]float64{
	0.97906021, 0.97905609, 0.97903800, 0.97894803, 0.97861131, 0.97744419,
	0.97430452, 0.96666074, 0.94827315, 0.89942870, 0.76068952, 0.46398083,
	0.20108456, 0.08798619, 0.04592906, 0.02862285, 0.02063495, 0.01660614,
	0.01456423, 0.01362850, 0.01336604, 0.01353087, 0.01391719, 0.01437823,
	0.01480086, 0.01512635, 0.01535036, 0.01548690, 0.01556422, 0.01560483,
	0.01562490, 0.01563429, 0.01563902, 0.01564133, 0.01564238, 0.01564289,
	0.01564311, 0.01564317,
}

var lumWeights = [spectralBands]float64{
	0.00000184, 0.00000621, 0.00003101, 0.00010475, 0.00035364, 0.00095147,
	0.00228226, 0.00420733, 0.00668880, 0.00988840, 0.01524945, 0.02141831,
	0.03342293, 0.05131001, 0.07040209, 0.08783871, 0.09424906, 0.09795666,
	0.09415219, 0.08678103, 0.07885654, 0.06352670, 0.05374142, 0.04264607,
	0.03161735, 0.02088521, 0.01386011, 0.00810264, 0.00463010, 0.00249138,
	0.00125930, 0.00054165, 0.00027795, 0.00014711, 0.00006103, 0.00003439,
	0.00001769, 0.00000722,
}

var reflToLinearR = [spectralBands]float64{
	0.00005476, 0.00018465, 0.00093514, 0.00309499, 0.00950372, 0.01734388,
	0.02206245, 0.01634180, 0.00199358, -0.01618181, -0.03392854, -0.04615441,
	-0.06380899, -0.08389956, -0.09181909, -0.08256921, -0.05294189, -0.01272465,
	0.03740840, 0.09168938, 0.14794416, 0.18151745, 0.21065448, 0.21002841,
	0.18128647, 0.13204603, 0.09371051, 0.05715118, 0.03346491, 0.01823288,
	0.00929744, 0.00402312, 0.00206831, 0.00109461, 0.00045411, 0.00025589,
	0.00013176, 0.00005368,
}

var reflToLinearG = [spectralBands]float64{
	-0.00004655, -0.00015786, -0.00080678, -0.00270695, -0.00847608, -0.01605541,
	-0.02200160, -0.02002457, -0.01113707, 0.00378245, 0.02213334, 0.03895744,
	0.06334974, 0.09596490, 0.12626025, 0.14855496, 0.14902700, 0.14238630,
	0.12207882, 0.09544913, 0.06743193, 0.03570738, 0.01315382, -0.00236275,
	-0.00938978, -0.00987431, -0.00836899, -0.00559969, -0.00344087, -0.00191897,
	-0.00099427, -0.00043486, -0.00022429, -0.00011869, -0.00004923, -0.00002775,
	-0.00001431, -0.00000581,
}

var reflToLinearB = [spectralBands]float64{
	0.00032593, 0.00110788, 0.00567729, 0.01918385, 0.06097663, 0.12134420,
	0.18486939, 0.20879724, 0.19731153, 0.14722837, 0.09181528, 0.04648324,
	0.02298100, 0.00664922, -0.00581655, -0.01245015, -0.01552323, -0.01671095,
	-0.01569800, -0.01364402, -0.01131299, -0.00807207, -0.00585765, -0.00393823,
	-0.00248606, -0.00143771, -0.00085067, -0.00045758, -0.00024760, -0.00012935,
	-0.00006398, -0.00002710, -0.00001384, -0.00000733, -0.00000304, -0.00000171,
	-0.00000088, -0.00000036,
}
